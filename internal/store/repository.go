/**
 * @description
 * This file defines the `Repository` interface, the contract for persisting
 * and retrieving reconciliation runs. The engine itself never touches
 * storage; the application layer saves each run so the console can pull up
 * past reconciliations by id. The interface keeps the business logic
 * decoupled from PostgreSQL and easy to test with an in-memory fake.
 *
 * @dependencies
 * - context, errors: Standard Go libraries.
 * - github.com/google/uuid: Run identifiers.
 * - internal/domain: Run models.
 */

package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vaultpay/reconciliation-service/internal/domain"
)

var ErrRunNotFound = errors.New("reconciliation run not found")

// Repository defines the set of methods for interacting with the database.
type Repository interface {
	SaveRun(ctx context.Context, run *domain.ReconciliationRun) error
	FindRunByID(ctx context.Context, runID uuid.UUID) (*domain.ReconciliationRun, error)
	ListRuns(ctx context.Context, limit, offset int) ([]domain.RunSummary, error)
}
