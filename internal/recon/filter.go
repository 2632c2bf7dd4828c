/**
 * @description
 * Row filtering and classification for parsed bank statement records. Bank
 * exports conflate administrative metadata, debit legs, and passthrough rail
 * flows (checkout/tap) with genuine depositable inflows; only the latter
 * enter the matchable set. The INWARD passthrough credits accumulate into
 * explicit running totals carried on the classification result rather than
 * hidden shared state, so the step is independently testable.
 *
 * @dependencies
 * - strconv, strings, time: Standard Go libraries.
 * - internal/domain: Row and currency models.
 */

package recon

import (
	"strconv"
	"strings"
	"time"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// Bank statement column names, post header-trim.
const (
	colAccountNumber        = "Account Number"
	colTransactionDate      = "Transaction Date"
	colValueDate            = "Value Date"
	colTransactionReference = "Transaction Reference"
	colNarration            = "Narration"
	colDebit                = "Debit"
	colCredit               = "Credit"
	colRunningBalance       = "Running Balance"
)

// classification is the outcome of filtering one statement file: the
// matchable credit rows plus the special passthrough totals.
type classification struct {
	Rows        []domain.BankStatementRow
	CheckoutAED float64
	CheckoutUSD float64
	TapUSD      float64
}

// parseAmount strips thousands-separator commas and parses a decimal amount.
// Blank or unparseable cells yield 0; bank exports routinely leave Debit or
// Credit empty, so this is a tolerance policy, not an error path.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// classifyBankRows filters parsed records from one statement file down to
// the matchable set, tagging each kept row with the file's resolved
// currency. valueDateFilter is the optional dd/mm/yyyy filter; empty means
// no filtering. The filter string must already be validated by the caller.
func classifyBankRows(records []record, currency domain.Currency, valueDateFilter string) classification {
	var out classification

	var dateVariants []string
	if valueDateFilter != "" {
		dateVariants = valueDateEquivalents(valueDateFilter)
	}

	for _, rec := range records {
		// Some exports repeat the column header mid-file after page breaks.
		if rec[colAccountNumber] == colAccountNumber {
			continue
		}

		reference := strings.TrimSpace(rec[colTransactionReference])
		if reference == "" {
			continue
		}

		// Only credit (incoming) legs are reconcilable.
		if parseAmount(rec[colDebit]) != 0 {
			continue
		}

		narration := strings.ToUpper(strings.TrimSpace(rec[colNarration]))
		if strings.HasPrefix(narration, "INWARD") {
			credit := parseAmount(rec[colCredit])
			switch {
			case strings.Contains(narration, "CHECKOUT") && currency == domain.CurrencyAED:
				out.CheckoutAED += credit
			case strings.Contains(narration, "CHECKOUT") && currency == domain.CurrencyUSD:
				out.CheckoutUSD += credit
			case strings.Contains(narration, "TAP") && currency == domain.CurrencyUSD:
				out.TapUSD += credit
			}
			// Passthrough rail rows never enter the matchable set.
			continue
		}

		if len(dateVariants) > 0 && !matchesAnyDate(rec[colValueDate], dateVariants) {
			continue
		}

		out.Rows = append(out.Rows, domain.BankStatementRow{
			AccountNumber:        rec[colAccountNumber],
			TransactionDate:      rec[colTransactionDate],
			ValueDate:            rec[colValueDate],
			TransactionReference: reference,
			Narration:            rec[colNarration],
			Debit:                rec[colDebit],
			Credit:               rec[colCredit],
			RunningBalance:       rec[colRunningBalance],
			Currency:             currency,
		})
	}

	return out
}

// validValueDate reports whether the filter string parses as dd/mm/yyyy.
func validValueDate(filter string) bool {
	_, err := time.Parse("02/01/2006", filter)
	return err == nil
}

// valueDateEquivalents expands a dd/mm/yyyy filter into the textual date
// representations seen across the banks' exports.
func valueDateEquivalents(filter string) []string {
	t, err := time.Parse("02/01/2006", filter)
	if err != nil {
		return nil
	}
	return []string{
		t.Format("02/01/2006"),
		t.Format("02-01-2006"),
		t.Format("02-Jan-2006"),
		t.Format("02 Jan 2006"),
		t.Format("2006-01-02"),
	}
}

func matchesAnyDate(valueDate string, variants []string) bool {
	valueDate = strings.TrimSpace(valueDate)
	for _, v := range variants {
		if strings.EqualFold(valueDate, v) {
			return true
		}
	}
	return false
}
