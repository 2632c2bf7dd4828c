/**
 * @description
 * Reference matching between the matchable bank rows and the filtered
 * MetaBase rows. Both sides collapse into lookup maps keyed by trimmed
 * transaction reference (last row wins on duplicates), then every
 * reference is classified three ways: matched, bank_only, database_only.
 *
 * A same-reference pair whose amounts disagree does NOT merge into a single
 * mismatch record: it splits into one bank_only and one database_only
 * result, modeling two independent discrepancies. The amount comparison is
 * strict equality on parsed floats with no epsilon.
 *
 * @dependencies
 * - strings: Standard Go library.
 * - internal/domain: Result models.
 */

package recon

import (
	"strings"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// matchByReference produces the full result set for one run. Iteration is
// bank-driven first (in input order), so matched/bank_only results precede
// the leftover database_only results deterministically.
func matchByReference(bankRows []domain.BankStatementRow, dbRows []domain.MetaBaseRow) []domain.ReconciliationResult {
	bankByRef := make(map[string]domain.BankStatementRow, len(bankRows))
	for _, row := range bankRows {
		bankByRef[strings.TrimSpace(row.TransactionReference)] = row
	}

	dbByRef := make(map[string]domain.MetaBaseRow, len(dbRows))
	for _, row := range dbRows {
		dbByRef[strings.TrimSpace(row.VAMReferenceNumber)] = row
	}

	results := make([]domain.ReconciliationResult, 0, len(bankByRef)+len(dbByRef))
	visited := make(map[string]bool, len(bankByRef))

	for _, row := range bankRows {
		ref := strings.TrimSpace(row.TransactionReference)
		if visited[ref] {
			continue
		}
		visited[ref] = true

		bankRow := bankByRef[ref]
		dbRow, inDB := dbByRef[ref]
		if !inDB {
			results = append(results, bankOnlyResult(ref, bankRow))
			continue
		}

		if parseAmount(bankRow.Credit) == parseAmount(dbRow.TransactionAmount) {
			b := bankRow
			d := dbRow
			results = append(results, domain.ReconciliationResult{
				MatchStatus:          domain.MatchStatusMatched,
				TransactionReference: ref,
				BankData:             &b,
				DatabaseData:         &d,
			})
		} else {
			// Amount mismatch: two independent discrepancies, never a diff.
			results = append(results, bankOnlyResult(ref, bankRow))
			results = append(results, databaseOnlyResult(ref, dbRow))
		}
	}

	emittedDB := make(map[string]bool, len(dbByRef))
	for _, row := range dbRows {
		ref := strings.TrimSpace(row.VAMReferenceNumber)
		if visited[ref] || emittedDB[ref] {
			continue
		}
		emittedDB[ref] = true
		results = append(results, databaseOnlyResult(ref, dbByRef[ref]))
	}

	return results
}

func bankOnlyResult(ref string, row domain.BankStatementRow) domain.ReconciliationResult {
	r := row
	return domain.ReconciliationResult{
		MatchStatus:          domain.MatchStatusBankOnly,
		TransactionReference: ref,
		BankData:             &r,
	}
}

func databaseOnlyResult(ref string, row domain.MetaBaseRow) domain.ReconciliationResult {
	r := row
	return domain.ReconciliationResult{
		MatchStatus:          domain.MatchStatusDatabaseOnly,
		TransactionReference: ref,
		DatabaseData:         &r,
	}
}
