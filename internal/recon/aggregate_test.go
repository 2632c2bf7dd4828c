package recon

import (
	"sort"
	"testing"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

func TestBuildStats_PerCurrencyBucketsAndTotals(t *testing.T) {
	bank := []domain.BankStatementRow{
		{TransactionReference: "TX1", Credit: "100.00", Currency: domain.CurrencyAED},
		{TransactionReference: "TX2", Credit: "1,000.00", Currency: domain.CurrencyAED},
		{TransactionReference: "TX3", Credit: "50.00", Currency: domain.CurrencyUSD},
	}
	db := []domain.MetaBaseRow{
		{VAMReferenceNumber: "TX1", Amount: "100.00", TransactionAmount: "100.00", TransactionCurrency: "AED", DeductedAmountInUSD: "27.23"},
		{VAMReferenceNumber: "TX3", Amount: "50.00", TransactionAmount: "50.00", TransactionCurrency: "USD", DeductedAmountInUSD: "50.00"},
	}
	results := matchByReference(bank, db)

	stats := buildStats(results, bank, db, domain.SpecialTransactions{CheckoutAED: 10})

	aed := stats.ByCurrency["AED"]
	if aed.BankCredit != 1100 {
		t.Errorf("AED bank credit = %v, want 1100", aed.BankCredit)
	}
	if aed.TransactionAmount != 100 || aed.DeductedAmount != 27.23 {
		t.Errorf("AED ledger bucket = %+v", aed)
	}

	usd := stats.ByCurrency["USD"]
	if usd.BankCredit != 50 || usd.TransactionAmount != 50 || usd.DeductedAmount != 50 {
		t.Errorf("USD bucket = %+v", usd)
	}

	if stats.TotalMetaBaseAmount != 150 {
		t.Errorf("TotalMetaBaseAmount = %v, want 150", stats.TotalMetaBaseAmount)
	}
	if stats.SpecialTransactions.CheckoutAED != 10 {
		t.Errorf("special totals must pass through, got %+v", stats.SpecialTransactions)
	}
	if stats.TotalRecords != len(results) {
		t.Errorf("TotalRecords = %d, want %d", stats.TotalRecords, len(results))
	}
}

func TestBuildStats_AggregationIdentity(t *testing.T) {
	bank := []domain.BankStatementRow{
		{TransactionReference: "TX1", Credit: "0.1", Currency: domain.CurrencyAED},
		{TransactionReference: "TX2", Credit: "0.2", Currency: domain.CurrencyUSD},
		{TransactionReference: "TX3", Credit: "0.3", Currency: domain.CurrencyUnknown},
	}
	db := []domain.MetaBaseRow{
		{VAMReferenceNumber: "TX1", TransactionAmount: "0.1", TransactionCurrency: "AED", DeductedAmountInUSD: "0.01"},
		{VAMReferenceNumber: "TX9", TransactionAmount: "7.77", TransactionCurrency: "EUR", DeductedAmountInUSD: "8.40"},
	}
	results := matchByReference(bank, db)

	stats := buildStats(results, bank, db, domain.SpecialTransactions{})

	// The grand totals are defined as the floating-point sum over the
	// buckets in sorted key order, so the identity must hold exactly, not
	// approximately.
	keys := make([]string, 0, len(stats.ByCurrency))
	for key := range stats.ByCurrency {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var bankCredit, txAmount, deducted float64
	for _, key := range keys {
		bucket := stats.ByCurrency[key]
		bankCredit += bucket.BankCredit
		txAmount += bucket.TransactionAmount
		deducted += bucket.DeductedAmount
	}
	if stats.TotalBankCredit != bankCredit {
		t.Errorf("TotalBankCredit %v != bucket sum %v", stats.TotalBankCredit, bankCredit)
	}
	if stats.TotalTransactionAmount != txAmount {
		t.Errorf("TotalTransactionAmount %v != bucket sum %v", stats.TotalTransactionAmount, txAmount)
	}
	if stats.TotalDeductedAmount != deducted {
		t.Errorf("TotalDeductedAmount %v != bucket sum %v", stats.TotalDeductedAmount, deducted)
	}
}

func TestMetaBaseCurrency_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		row  domain.MetaBaseRow
		want string
	}{
		{"transaction currency wins", domain.MetaBaseRow{TransactionCurrency: "AED", OriginalCurrency: "USD"}, "AED"},
		{"original currency fallback", domain.MetaBaseRow{OriginalCurrency: "USD"}, "USD"},
		{"unknown fallback", domain.MetaBaseRow{}, "UNKNOWN"},
		{"whitespace treated as empty", domain.MetaBaseRow{TransactionCurrency: "  ", OriginalCurrency: "OMR"}, "OMR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metaBaseCurrency(tt.row); got != tt.want {
				t.Errorf("metaBaseCurrency() = %q, want %q", got, tt.want)
			}
		})
	}
}
