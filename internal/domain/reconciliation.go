/**
 * @description
 * This file defines the core domain models for the reconciliation-service.
 * These structs represent the entities flowing through the deposit
 * reconciliation engine: raw bank statement rows, MetaBase ledger rows, the
 * per-reference match results, and the aggregate statistics returned to the
 * console.
 *
 * @notes
 * - JSON tags are camelCase because these structs are the wire contract the
 *   operations console reads; the frontend binds to matchStatus/bankData/etc.
 * - Amounts stay as parsed float64 values. The matcher's contract is strict
 *   equality on parsed floats and the stats are floating-point sums; this is
 *   documented current behavior, not an oversight.
 */

package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus classifies one reconciliation result.
type MatchStatus string

const (
	MatchStatusMatched      MatchStatus = "matched"
	MatchStatusBankOnly     MatchStatus = "bank_only"
	MatchStatusDatabaseOnly MatchStatus = "database_only"
)

// Currency is the closed set of settlement currencies resolvable from the
// bank account table, plus the UNKNOWN sentinel for unrecognized accounts.
type Currency string

const (
	CurrencyAED     Currency = "AED"
	CurrencyUSD     Currency = "USD"
	CurrencyOMR     Currency = "OMR"
	CurrencyQAR     Currency = "QAR"
	CurrencySAR     Currency = "SAR"
	CurrencyKWD     Currency = "KWD"
	CurrencyBHD     Currency = "BHD"
	CurrencyUnknown Currency = "UNKNOWN"
)

// BankStatementRow is one transaction line from a bank export. Currency is
// not present in the source file; it is resolved from the statement header
// and attached during ingestion.
type BankStatementRow struct {
	AccountNumber        string   `json:"accountNumber"`
	TransactionDate      string   `json:"transactionDate"`
	ValueDate            string   `json:"valueDate"`
	TransactionReference string   `json:"transactionReference"`
	Narration            string   `json:"narration"`
	Debit                string   `json:"debit"`
	Credit               string   `json:"credit"`
	RunningBalance       string   `json:"runningBalance"`
	Currency             Currency `json:"currency"`
}

// MetaBaseRow is one deposit record from the internal ledger export. Only
// rows with a non-empty VAMReferenceNumber participate in matching.
type MetaBaseRow struct {
	VAMReferenceNumber  string `json:"vam_reference_number"`
	FirstName           string `json:"firstname"`
	LastName            string `json:"lastname"`
	Amount              string `json:"amount"`
	TransactionAmount   string `json:"transaction_amount"`
	TransactionCurrency string `json:"transaction_currency"`
	OriginalCurrency    string `json:"original_currency"`
	DeductedAmountInUSD string `json:"deducted_amount_in_usd"`
	VANumber            string `json:"va_number"`
	UserID              string `json:"user_id"`
	DepositID           string `json:"deposit_id"`
	CreatedAt           string `json:"created_at"`
	FeeName             string `json:"fee_name"`
}

// ReconciliationResult is one output unit of the reference matcher. Matched
// rows carry both sides; bank_only/database_only rows carry exactly one.
type ReconciliationResult struct {
	MatchStatus          MatchStatus       `json:"matchStatus"`
	TransactionReference string            `json:"transactionReference"`
	BankData             *BankStatementRow `json:"bankData"`
	DatabaseData         *MetaBaseRow      `json:"databaseData"`
}

// CurrencyTotals is one per-currency bucket in the stats breakdown.
type CurrencyTotals struct {
	BankCredit        float64 `json:"bankCredit"`
	TransactionAmount float64 `json:"transactionAmount"`
	DeductedAmount    float64 `json:"deductedAmount"`
}

// SpecialTransactions carries the running totals for the INWARD passthrough
// rails that are excluded from normal reconciliation.
type SpecialTransactions struct {
	CheckoutAED float64 `json:"checkoutAed"`
	CheckoutUSD float64 `json:"checkoutUsd"`
	TapUSD      float64 `json:"tapUsd"`
}

// ReconciliationStats is the aggregate summary of one run, recomputed fresh
// on every invocation and never mutated afterward.
type ReconciliationStats struct {
	TotalMatched           int                       `json:"totalMatched"`
	TotalBankOnly          int                       `json:"totalBankOnly"`
	TotalDatabaseOnly      int                       `json:"totalDatabaseOnly"`
	TotalRecords           int                       `json:"totalRecords"`
	TotalBankCredit        float64                   `json:"totalBankCredit"`
	TotalMetaBaseAmount    float64                   `json:"totalMetaBaseAmount"`
	TotalDeductedAmount    float64                   `json:"totalDeductedAmount"`
	TotalTransactionAmount float64                   `json:"totalTransactionAmount"`
	ByCurrency             map[string]CurrencyTotals `json:"byCurrency"`
	SpecialTransactions    SpecialTransactions       `json:"specialTransactions"`
}

// ReconciliationReport is what the engine returns to its caller: the full
// result set plus the aggregate stats.
type ReconciliationReport struct {
	Results []ReconciliationResult `json:"results"`
	Stats   ReconciliationStats    `json:"stats"`
}

// ReconciliationRun is a persisted reconciliation invocation. The engine
// itself never creates these; the application layer wraps the engine report
// so the console can retrieve past runs by id.
type ReconciliationRun struct {
	ID              uuid.UUID              `json:"id"`
	ValueDateFilter string                 `json:"valueDateFilter,omitempty"`
	BankFileCount   int                    `json:"bankFileCount"`
	Results         []ReconciliationResult `json:"results"`
	Stats           ReconciliationStats    `json:"stats"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// RunSummary is the list-view projection of a run (no result rows).
type RunSummary struct {
	ID              uuid.UUID           `json:"id"`
	ValueDateFilter string              `json:"valueDateFilter,omitempty"`
	BankFileCount   int                 `json:"bankFileCount"`
	Stats           ReconciliationStats `json:"stats"`
	CreatedAt       time.Time           `json:"createdAt"`
}
