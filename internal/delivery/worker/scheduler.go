package worker

import (
	"context"
	"log/slog"
	"time"

	"marketsync/config"
	"marketsync/internal/delivery"
	deliverycontext "marketsync/internal/delivery/context"
	"marketsync/internal/usecase"
	"marketsync/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the reconciliation schedule
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ArchivalUC usecase.ArchivalUsecase
}

type scheduler struct {
	interval   time.Duration
	archivalUC usecase.ArchivalUsecase
	logger     *slog.Logger
	stopped    context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewScheduler runs reconciliation once at start and then every
// reconciler.interval. A zero interval disables the schedule.
func NewScheduler(params SchedulerParams) delivery.Delivery {
	stopped, cancel := context.WithCancel(context.Background())
	s := &scheduler{
		archivalUC: params.ArchivalUC,
		logger:     params.Logger,
		stopped:    stopped,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	if params.Cfg.Reconciler != nil {
		s.interval = params.Cfg.Reconciler.Interval
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the schedule is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Reconciliation schedule disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unlink := context.AfterFunc(s.stopped, cancel)
	defer unlink()

	s.logger.Info("Starting reconciliation schedule", slog.Duration("interval", s.interval))

	s.runCycle(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *scheduler) runCycle(ctx context.Context) {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	start := time.Now()
	result, err := s.archivalUC.RunOnce(ctx, usecase.TriggerSchedule)
	if err != nil {
		logger.Error("Scheduled reconciliation failed", slog.Any("error", err))

		return
	}
	logger.Debug("Scheduled reconciliation finished",
		slog.Int("archived", len(result.Archived)),
		slog.Int("active", result.ActiveCount),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping reconciliation schedule")
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
