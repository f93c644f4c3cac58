package worker

import (
	"context"
	"fmt"
	"time"

	"finsim/internal/logger"
	"finsim/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MaturitySweeper periodically announces commitments that reached their
// unlock date
type MaturitySweeper struct {
	Cron              *cron.Cron
	CommitmentService service.CommitmentService
	Logger            *zap.SugaredLogger
	Now               func() time.Time
	Ctx               context.Context
}

func NewMaturitySweeper(ctx context.Context, commitmentService service.CommitmentService, lg *zap.SugaredLogger) *MaturitySweeper {
	return &MaturitySweeper{
		// a slow sweep is skipped rather than overlapped
		Cron:              cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		CommitmentService: commitmentService,
		Logger:            lg,
		Now:               time.Now,
		Ctx:               logger.WithContext(ctx, lg),
	}
}

func (s *MaturitySweeper) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		if _, err := s.RunNow(); err != nil {
			s.Logger.Errorf("maturity sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to register maturity sweep %q: %w", spec, err)
	}
	return nil
}

func (s *MaturitySweeper) Start() {
	s.Cron.Start()
	s.Logger.Info("maturity sweeper started")
}

// Stop waits for a running sweep to finish
func (s *MaturitySweeper) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("maturity sweeper stopped")
}

func (s *MaturitySweeper) RunNow() (int, error) {
	return s.CommitmentService.NotifyMatured(s.Ctx, s.Now().UTC())
}
