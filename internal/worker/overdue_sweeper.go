package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/usecase"
)

// PaymentFacade exposes the subset of application functionality required by the sweeper.
type PaymentFacade interface {
	OverdueCandidates(ctx context.Context) ([]model.Payment, error)
	MarkOverdue(ctx context.Context, paymentID string, overdue bool) error
}

// OverdueSweeper periodically flags payments whose due date has passed
// and clears the flag once nothing is outstanding.
type OverdueSweeper struct {
	facade       PaymentFacade
	scanInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger
	now          func() time.Time

	jobs   chan overdueJob
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

type overdueJob struct {
	paymentID string
	overdue   bool
}

// NewOverdueSweeper constructs overdue sweeper worker pool.
func NewOverdueSweeper(facade PaymentFacade, scanInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OverdueSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OverdueSweeper{
		facade:       facade,
		scanInterval: scanInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		now:          time.Now,
		jobs:         make(chan overdueJob, batchSize*workers),
	}
}

// Start launches background processing.
func (s *OverdueSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *OverdueSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *OverdueSweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scanAndDispatch(ctx)
		}
	}
}

// scanAndDispatch queues at most batchSize payments whose flag is stale.
// The rest are picked up by later scans.
func (s *OverdueSweeper) scanAndDispatch(ctx context.Context) {
	payments, err := s.facade.OverdueCandidates(ctx)
	if err != nil {
		s.logger.Error("scan overdue payments failed", slog.String("error", err.Error()))
		return
	}

	now := s.now()
	queued := 0
	for _, p := range payments {
		overdue := usecase.IsOverdue(p, now)
		if overdue == p.IsOverdue {
			continue
		}
		if queued == s.batchSize {
			return
		}
		select {
		case <-ctx.Done():
			return
		case s.jobs <- overdueJob{paymentID: p.ID, overdue: overdue}:
			queued++
		}
	}
}

func (s *OverdueSweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handle(ctx, job)
		}
	}
}

func (s *OverdueSweeper) handle(ctx context.Context, job overdueJob) {
	if err := s.facade.MarkOverdue(ctx, job.paymentID, job.overdue); err != nil {
		s.logger.Error("mark overdue failed", slog.String("payment", job.paymentID), slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("payment overdue flag updated", slog.String("payment", job.paymentID), slog.Bool("overdue", job.overdue))
}
