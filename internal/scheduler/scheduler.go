package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/technova/inventory-service/internal/store"
)

// Scheduler periodically logs an inventory snapshot so operators get a
// recurring stock summary without scraping the API.
type Scheduler struct {
	cron     *cron.Cron
	store    *store.InventoryStore
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The schedule uses standard
// five-field cron syntax.
func NewScheduler(schedule string, st *store.InventoryStore, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		store:    st,
		schedule: schedule,
		logger:   logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.logSnapshot); err != nil {
		s.logger.Error("failed to schedule inventory snapshot", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logSnapshot() {
	items := s.store.List()

	var totalStock int
	for _, item := range items {
		totalStock += item.Stock
	}

	s.logger.Info("inventory snapshot",
		zap.Int("items", len(items)),
		zap.Int("total_stock", totalStock))
}
