/**
 * @description
 * This file provides the PostgreSQL implementation of the `Repository`
 * interface. Reconciliation runs are stored in the `reconciliation_runs`
 * table with the result set and stats serialized as JSONB; the engine output
 * is already the console's wire shape, so the database keeps the same
 * document rather than exploding thousands of result rows into a relational
 * table nobody queries individually.
 *
 * @dependencies
 * - context, encoding/json: Standard Go libraries.
 * - github.com/jackc/pgx/v5: The PostgreSQL driver for database operations.
 * - internal/domain: Contains the domain models used for data transfer.
 */

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// PostgresRepository is a concrete implementation of the Repository interface for PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new instance of PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveRun persists one reconciliation run.
func (r *PostgresRepository) SaveRun(ctx context.Context, run *domain.ReconciliationRun) error {
	results, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal run results: %w", err)
	}
	stats, err := json.Marshal(run.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal run stats: %w", err)
	}

	query := `
		INSERT INTO reconciliation_runs (id, value_date_filter, bank_file_count, results, stats, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)`
	_, err = r.db.Exec(ctx, query, run.ID, run.ValueDateFilter, run.BankFileCount, results, stats, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reconciliation run: %w", err)
	}
	return nil
}

// FindRunByID retrieves one run with its full result set.
func (r *PostgresRepository) FindRunByID(ctx context.Context, runID uuid.UUID) (*domain.ReconciliationRun, error) {
	query := `
		SELECT id, COALESCE(value_date_filter, ''), bank_file_count, results, stats, created_at
		FROM reconciliation_runs
		WHERE id = $1`

	var run domain.ReconciliationRun
	var results, stats []byte
	err := r.db.QueryRow(ctx, query, runID).Scan(
		&run.ID, &run.ValueDateFilter, &run.BankFileCount, &results, &stats, &run.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(results, &run.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run results: %w", err)
	}
	if err := json.Unmarshal(stats, &run.Stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run stats: %w", err)
	}
	return &run, nil
}

// ListRuns returns run summaries newest-first. The result rows themselves
// are not loaded for the list view.
func (r *PostgresRepository) ListRuns(ctx context.Context, limit, offset int) ([]domain.RunSummary, error) {
	query := `
		SELECT id, COALESCE(value_date_filter, ''), bank_file_count, stats, created_at
		FROM reconciliation_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.RunSummary, 0)
	for rows.Next() {
		var summary domain.RunSummary
		var stats []byte
		if err := rows.Scan(&summary.ID, &summary.ValueDateFilter, &summary.BankFileCount, &stats, &summary.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(stats, &summary.Stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run stats: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
