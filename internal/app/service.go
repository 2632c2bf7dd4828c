/**
 * @description
 * This file contains the application service for the reconciliation-service.
 * The `Service` struct orchestrates one reconciliation invocation end to
 * end: it runs the pure matching engine over the uploaded CSV texts, wraps
 * the report into a persisted run, saves it through the repository, and
 * publishes a run-completed event for downstream console services.
 *
 * The engine itself (internal/recon) stays pure; everything with a side
 * effect lives here. Event publishing is best-effort: a broker failure is
 * logged and never fails a run that has already been persisted.
 *
 * @dependencies
 * - context, fmt, log, time: Standard Go libraries.
 * - github.com/google/uuid: Run identifiers.
 * - internal/domain, internal/recon, internal/store: Models, engine, persistence.
 * - pkg/rabbitmq: Event publishing.
 */

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpay/reconciliation-service/internal/domain"
	"github.com/vaultpay/reconciliation-service/internal/recon"
	"github.com/vaultpay/reconciliation-service/internal/store"
	"github.com/vaultpay/reconciliation-service/pkg/rabbitmq"
)

// Service provides the core business logic for reconciliation runs.
type Service struct {
	repo          store.Repository
	eventProducer rabbitmq.Publisher
	eventExchange string
}

// NewService creates a new reconciliation service instance.
func NewService(repo store.Repository, producer rabbitmq.Publisher, eventExchange string) *Service {
	return &Service{
		repo:          repo,
		eventProducer: producer,
		eventExchange: eventExchange,
	}
}

// RunReconciliation executes one reconciliation over the raw CSV texts,
// persists the run, and publishes a run-completed event. Engine errors
// (missing files, malformed CSV, bad filter) pass through untouched so the
// API layer can classify them.
func (s *Service) RunReconciliation(ctx context.Context, bankStatements []string, metaBaseExport string, valueDateFilter string) (*domain.ReconciliationRun, error) {
	report, err := recon.Reconcile(bankStatements, metaBaseExport, valueDateFilter)
	if err != nil {
		return nil, err
	}

	run := &domain.ReconciliationRun{
		ID:              uuid.New(),
		ValueDateFilter: valueDateFilter,
		BankFileCount:   len(bankStatements),
		Results:         report.Results,
		Stats:           report.Stats,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to persist reconciliation run: %w", err)
	}

	log.Printf("level=info component=app msg=\"reconciliation run completed\" run_id=%s matched=%d bank_only=%d database_only=%d",
		run.ID, run.Stats.TotalMatched, run.Stats.TotalBankOnly, run.Stats.TotalDatabaseOnly)

	if s.eventProducer != nil {
		event := rabbitmq.RunCompletedEvent{
			RunID:             run.ID,
			TotalMatched:      run.Stats.TotalMatched,
			TotalBankOnly:     run.Stats.TotalBankOnly,
			TotalDatabaseOnly: run.Stats.TotalDatabaseOnly,
			TotalBankCredit:   run.Stats.TotalBankCredit,
			ValueDateFilter:   run.ValueDateFilter,
			Timestamp:         run.CreatedAt,
		}
		if err := s.eventProducer.PublishRunCompleted(ctx, s.eventExchange, event); err != nil {
			log.Printf("level=warn component=app msg=\"run completed event publish failed\" run_id=%s err=%v", run.ID, err)
		}
	}

	return run, nil
}

// GetRun retrieves one persisted run with its full result set.
func (s *Service) GetRun(ctx context.Context, runID uuid.UUID) (*domain.ReconciliationRun, error) {
	return s.repo.FindRunByID(ctx, runID)
}

// ListRuns returns persisted run summaries, newest first.
func (s *Service) ListRuns(ctx context.Context, limit, offset int) ([]domain.RunSummary, error) {
	return s.repo.ListRuns(ctx, limit, offset)
}

// ExtractName exposes the narration name heuristic to the presentation
// layer, which calls it per displayed row rather than at matching time.
func (s *Service) ExtractName(narration string) string {
	return recon.ExtractName(narration)
}

// FuzzyScore exposes the 0-100 name similarity used by the console next to
// extracted names.
func (s *Service) FuzzyScore(nameA, nameB string) int {
	return recon.FuzzyScore(nameA, nameB)
}
