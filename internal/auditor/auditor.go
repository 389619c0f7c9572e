package auditor

import (
	"context"
	"time"

	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type capacityChecker interface {
	OverCapacity(ctx context.Context) ([]domain.CapacityViolation, error)
}

// Auditor periodically sweeps the store for events holding more
// registrations than their capacity allows. The register path makes such a
// state unreachable through the service, so every hit points at an outside
// write and is logged loudly.
type Auditor struct {
	events   capacityChecker
	interval time.Duration
	logger   logger.Logger
}

func New(events capacityChecker, interval time.Duration, logger logger.Logger) *Auditor {
	return &Auditor{
		events:   events,
		interval: interval,
		logger:   logger,
	}
}

func (a *Auditor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info("capacity auditor started",
		logger.Duration("interval", a.interval),
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("capacity auditor stopped")
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *Auditor) tick(ctx context.Context) {
	violations, err := a.events.OverCapacity(ctx)
	if err != nil {
		a.logger.Error("capacity audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, v := range violations {
		a.logger.Error("event over capacity",
			logger.String("event_id", v.EventID),
			logger.String("heading", v.Heading),
			logger.Int("max_registrations", v.MaxRegistrations),
			logger.Int("registered", v.Registered),
		)
	}
}
