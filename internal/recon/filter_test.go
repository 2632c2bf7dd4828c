package recon

import (
	"testing"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

func bankRecord(reference, narration, debit, credit string) record {
	return record{
		colAccountNumber:        "1012004513601",
		colTransactionDate:      "05/08/2025",
		colValueDate:            "05/08/2025",
		colTransactionReference: reference,
		colNarration:            narration,
		colDebit:                debit,
		colCredit:               credit,
		colRunningBalance:       "10,000.00",
	}
}

func TestClassifyBankRows_Filtering(t *testing.T) {
	headerRepeat := bankRecord("TX9", "SOME CREDIT", "", "50.00")
	headerRepeat[colAccountNumber] = colAccountNumber

	records := []record{
		bankRecord("TX1", "TRANSFER FROM JOHN SMITH", "", "100.00"),
		bankRecord("", "NO REFERENCE CREDIT", "", "75.00"),
		bankRecord("TX2", "OUTGOING LEG", "1,200.00", ""),
		headerRepeat,
	}

	got := classifyBankRows(records, domain.CurrencyAED, "")
	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 matchable row, got %d", len(got.Rows))
	}
	if got.Rows[0].TransactionReference != "TX1" {
		t.Errorf("expected TX1 to survive, got %q", got.Rows[0].TransactionReference)
	}
	if got.Rows[0].Currency != domain.CurrencyAED {
		t.Errorf("expected resolved currency on kept row, got %q", got.Rows[0].Currency)
	}
}

func TestClassifyBankRows_DebitExclusion(t *testing.T) {
	records := []record{
		bankRecord("TX1", "DEBIT WITH COMMAS", "2,500.50", ""),
		bankRecord("TX2", "UNPARSEABLE DEBIT IS ZERO", "n/a", "10.00"),
	}

	got := classifyBankRows(records, domain.CurrencyUSD, "")
	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got.Rows))
	}
	if got.Rows[0].TransactionReference != "TX2" {
		t.Errorf("unparseable debit should default to 0 and keep the row, got %q", got.Rows[0].TransactionReference)
	}
}

func TestClassifyBankRows_InwardSpecialTotals(t *testing.T) {
	tests := []struct {
		name            string
		narration       string
		credit          string
		currency        domain.Currency
		wantCheckoutAED float64
		wantCheckoutUSD float64
		wantTapUSD      float64
	}{
		{
			name:            "inward checkout in AED",
			narration:       "INWARD CHECKOUT TRANSFER",
			credit:          "1,500.00",
			currency:        domain.CurrencyAED,
			wantCheckoutAED: 1500,
		},
		{
			name:            "inward checkout in USD",
			narration:       "INWARD CHECKOUT TRANSFER",
			credit:          "800.25",
			currency:        domain.CurrencyUSD,
			wantCheckoutUSD: 800.25,
		},
		{
			name:       "inward tap in USD",
			narration:  "INWARD TAP SETTLEMENT",
			credit:     "90.00",
			currency:   domain.CurrencyUSD,
			wantTapUSD: 90,
		},
		{
			name:      "inward tap outside USD is dropped silently",
			narration: "INWARD TAP SETTLEMENT",
			credit:    "90.00",
			currency:  domain.CurrencyAED,
		},
		{
			name:      "other inward narration is dropped silently",
			narration: "INWARD SWIFT SETTLEMENT",
			credit:    "42.00",
			currency:  domain.CurrencyAED,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []record{bankRecord("TX1", tt.narration, "", tt.credit)}
			got := classifyBankRows(records, tt.currency, "")

			if len(got.Rows) != 0 {
				t.Fatalf("inward rows must never enter the matchable set, got %d rows", len(got.Rows))
			}
			if got.CheckoutAED != tt.wantCheckoutAED {
				t.Errorf("CheckoutAED = %v, want %v", got.CheckoutAED, tt.wantCheckoutAED)
			}
			if got.CheckoutUSD != tt.wantCheckoutUSD {
				t.Errorf("CheckoutUSD = %v, want %v", got.CheckoutUSD, tt.wantCheckoutUSD)
			}
			if got.TapUSD != tt.wantTapUSD {
				t.Errorf("TapUSD = %v, want %v", got.TapUSD, tt.wantTapUSD)
			}
		})
	}
}

func TestClassifyBankRows_ValueDateFilter(t *testing.T) {
	tests := []struct {
		name      string
		valueDate string
		wantKept  bool
	}{
		{"slash format", "05/08/2025", true},
		{"dash format", "05-08-2025", true},
		{"dash month name", "05-Aug-2025", true},
		{"uppercase month name", "05-AUG-2025", true},
		{"spaced month name", "05 Aug 2025", true},
		{"iso format", "2025-08-05", true},
		{"different day", "06/08/2025", false},
		{"empty value date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := bankRecord("TX1", "TRANSFER FROM JOHN SMITH", "", "100.00")
			rec[colValueDate] = tt.valueDate

			got := classifyBankRows([]record{rec}, domain.CurrencyAED, "05/08/2025")
			kept := len(got.Rows) == 1
			if kept != tt.wantKept {
				t.Errorf("value date %q kept = %t, want %t", tt.valueDate, kept, tt.wantKept)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234.56", 1234.56},
		{" 100.00 ", 100},
		{"", 0},
		{"n/a", 0},
		{"0", 0},
		{"12,345,678.90", 12345678.90},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
