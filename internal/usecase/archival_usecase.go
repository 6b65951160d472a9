package usecase

import (
	"context"
	"time"

	"marketsync/internal/domain/entity"
)

// Reconciliation triggers, used as a metric label.
const (
	TriggerView      = "view"
	TriggerSchedule  = "schedule"
	TriggerPush      = "push"
	TriggerAPIManual = "manual"
)

// ReconcileResult summarizes one reconciliation run.
type ReconcileResult struct {
	// Active is every unexpired, unarchived advertisement of the input.
	Active []*entity.Advertisement `json:"-"`

	// Archived lists the advertisements archived by this run.
	Archived []string `json:"archived"`

	// HistoryEntries lists the price history keys written by this run.
	HistoryEntries []string `json:"historyEntries"`

	// Skipped counts expired advertisements claimed by a concurrent run.
	Skipped int `json:"skipped"`

	ActiveCount int `json:"activeCount"`
}

// ArchivalUsecase moves expired advertisements into the price history.
type ArchivalUsecase interface {
	// Reconcile archives the expired advertisements of ads in one atomic
	// update and returns the active set. storeNames maps store ids to names.
	Reconcile(ctx context.Context, ads []*entity.Advertisement, storeNames map[string]string, trigger string) (*ReconcileResult, error)

	// RunOnce reads advertisements and stores from the store and reconciles them.
	RunOnce(ctx context.Context, trigger string) (*ReconcileResult, error)
}

// ReconcileRecorder receives one observation per reconciliation run.
type ReconcileRecorder interface {
	ObserveRun(trigger string, took time.Duration, archived, skipped int, err error)
}
