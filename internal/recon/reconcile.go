/**
 * @description
 * The reconciliation engine entry point. One invocation ingests the raw bank
 * statement CSV texts and the MetaBase export, classifies and matches
 * transactions by reference, and returns the result set plus aggregate
 * statistics. The engine is pure and request-scoped: it owns no storage, no
 * auth and no presentation, and every invocation is independent.
 *
 * @dependencies
 * - fmt, strings: Standard Go libraries.
 * - internal/domain: Report models.
 */

package recon

import (
	"fmt"
	"strings"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// MetaBase export column names.
const (
	colVAMReference        = "vam_reference_number"
	colFirstName           = "firstname"
	colLastName            = "lastname"
	colAmount              = "amount"
	colTransactionAmount   = "transaction_amount"
	colTransactionCurrency = "transaction_currency"
	colOriginalCurrency    = "original_currency"
	colDeductedAmountUSD   = "deducted_amount_in_usd"
	colVANumber            = "va_number"
	colUserID              = "user_id"
	colDepositID           = "deposit_id"
	colCreatedAt           = "created_at"
	colFeeName             = "fee_name"
)

// bankStatementMetadataLines is the fixed non-tabular block (account number
// declaration plus title line) every bank export carries before its header.
const bankStatementMetadataLines = 2

// Reconcile runs one end-to-end reconciliation over the raw bank statement
// texts and the MetaBase export text. valueDateFilter is optional; when
// non-empty it must be dd/mm/yyyy and restricts the matchable bank rows to
// that value date. A *ParseError aborts the run with no partial result.
func Reconcile(bankStatements []string, metaBaseExport string, valueDateFilter string) (*domain.ReconciliationReport, error) {
	if len(bankStatements) == 0 {
		return nil, ErrMissingBankStatement
	}
	if strings.TrimSpace(metaBaseExport) == "" {
		return nil, ErrMissingMetaBaseExport
	}
	if valueDateFilter != "" && !validValueDate(valueDateFilter) {
		return nil, ErrInvalidValueDate
	}

	dbRecords, err := parseRecords(metaBaseExport, 0, "metabase export")
	if err != nil {
		return nil, err
	}
	dbRows := collectMetaBaseRows(dbRecords)

	var bankRows []domain.BankStatementRow
	var special domain.SpecialTransactions
	for i, raw := range bankStatements {
		currency := resolveStatementCurrency(raw)
		records, err := parseRecords(raw, bankStatementMetadataLines, fmt.Sprintf("bank statement %d", i+1))
		if err != nil {
			return nil, err
		}

		classified := classifyBankRows(records, currency, valueDateFilter)
		bankRows = append(bankRows, classified.Rows...)
		special.CheckoutAED += classified.CheckoutAED
		special.CheckoutUSD += classified.CheckoutUSD
		special.TapUSD += classified.TapUSD
	}

	results := matchByReference(bankRows, dbRows)
	stats := buildStats(results, bankRows, dbRows, special)

	return &domain.ReconciliationReport{Results: results, Stats: stats}, nil
}

// collectMetaBaseRows keeps the ledger rows eligible for matching: only a
// non-empty join key is required on this side.
func collectMetaBaseRows(records []record) []domain.MetaBaseRow {
	rows := make([]domain.MetaBaseRow, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec[colVAMReference]) == "" {
			continue
		}
		rows = append(rows, domain.MetaBaseRow{
			VAMReferenceNumber:  rec[colVAMReference],
			FirstName:           rec[colFirstName],
			LastName:            rec[colLastName],
			Amount:              rec[colAmount],
			TransactionAmount:   rec[colTransactionAmount],
			TransactionCurrency: rec[colTransactionCurrency],
			OriginalCurrency:    rec[colOriginalCurrency],
			DeductedAmountInUSD: rec[colDeductedAmountUSD],
			VANumber:            rec[colVANumber],
			UserID:              rec[colUserID],
			DepositID:           rec[colDepositID],
			CreatedAt:           rec[colCreatedAt],
			FeeName:             rec[colFeeName],
		})
	}
	return rows
}
