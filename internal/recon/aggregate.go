/**
 * @description
 * Aggregate statistics for one reconciliation run: per-currency sums for
 * bank credit, MetaBase transaction amount and deducted-in-USD amount, grand
 * totals across all currency buckets, result counts per match status, and
 * the special passthrough totals accumulated during classification.
 */

package recon

import (
	"sort"
	"strings"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// buildStats derives the run statistics from the result set, the matchable
// bank rows, the filtered MetaBase rows, and the passthrough totals. Grand
// totals are the floating-point sum across the currency buckets, so the
// aggregation identity (total == sum of byCurrency) holds exactly.
func buildStats(results []domain.ReconciliationResult, bankRows []domain.BankStatementRow, dbRows []domain.MetaBaseRow, special domain.SpecialTransactions) domain.ReconciliationStats {
	stats := domain.ReconciliationStats{
		TotalRecords:        len(results),
		ByCurrency:          make(map[string]domain.CurrencyTotals),
		SpecialTransactions: special,
	}

	for _, result := range results {
		switch result.MatchStatus {
		case domain.MatchStatusMatched:
			stats.TotalMatched++
		case domain.MatchStatusBankOnly:
			stats.TotalBankOnly++
		case domain.MatchStatusDatabaseOnly:
			stats.TotalDatabaseOnly++
		}
	}

	for _, row := range bankRows {
		bucket := stats.ByCurrency[string(row.Currency)]
		bucket.BankCredit += parseAmount(row.Credit)
		stats.ByCurrency[string(row.Currency)] = bucket
	}

	for _, row := range dbRows {
		currency := metaBaseCurrency(row)
		bucket := stats.ByCurrency[currency]
		bucket.TransactionAmount += parseAmount(row.TransactionAmount)
		bucket.DeductedAmount += parseAmount(row.DeductedAmountInUSD)
		stats.ByCurrency[currency] = bucket

		stats.TotalMetaBaseAmount += parseAmount(row.Amount)
	}

	// Sum buckets in sorted key order; float addition is order-sensitive and
	// the stats must be identical on every run over the same inputs.
	keys := make([]string, 0, len(stats.ByCurrency))
	for key := range stats.ByCurrency {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		bucket := stats.ByCurrency[key]
		stats.TotalBankCredit += bucket.BankCredit
		stats.TotalTransactionAmount += bucket.TransactionAmount
		stats.TotalDeductedAmount += bucket.DeductedAmount
	}

	return stats
}

// metaBaseCurrency picks the bucket key for a ledger row: transaction
// currency first, original currency as fallback, UNKNOWN last.
func metaBaseCurrency(row domain.MetaBaseRow) string {
	if c := strings.TrimSpace(row.TransactionCurrency); c != "" {
		return c
	}
	if c := strings.TrimSpace(row.OriginalCurrency); c != "" {
		return c
	}
	return string(domain.CurrencyUnknown)
}
