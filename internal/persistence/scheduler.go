package persistence

import (
	"sync"
	"time"
	"wxledger/internal/persistence/interfaces"
	"wxledger/internal/providers"
	"wxledger/internal/services"
	"wxledger/internal/structures"

	"github.com/go-co-op/gocron"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	ledger      services.LedgerInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gocron.Scheduler
	opsMu       sync.Mutex
}

// Init starts the snapshot job and the block clock.
func (s *Scheduler) Init() error {
	s.cron = gocron.NewScheduler(time.UTC)

	if s.config.Persistence.FilePath != "" {
		_, err := s.cron.Every(s.config.Persistence.SaveInterval).WaitForSchedule().Do(func() {
			if err := s.Persist(); err == nil {
				s.logger.Infof(providers.TypeApp, "Persisted ledger to file %s", s.config.Persistence.FilePath)
			}
		})
		if err != nil {
			return err
		}
	}

	_, err := s.cron.Every(s.config.Ledger.BlockInterval).WaitForSchedule().Do(func() {
		height := s.ledger.AdvanceBlock()
		s.logger.Debugf(providers.TypeLedger, "Block height advanced to %d", height)
	})
	if err != nil {
		return err
	}

	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Close releases the snapshot codec. Call after the final Persist.
func (s *Scheduler) Close() {
	s.fileManager.Close()
}

func (s *Scheduler) Restore() error {
	if s.config.Persistence.FilePath == "" {
		return nil
	}
	if err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	s.reportRecords()
	return nil
}

func (s *Scheduler) Persist() error {
	if s.config.Persistence.FilePath == "" {
		return nil
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.reportRecords()
	return nil
}

func (s *Scheduler) reportRecords() {
	for store, count := range s.ledger.RecordCounts() {
		s.metrics.SetRecordsTotal(store, count)
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, ledger services.LedgerInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		ledger:      ledger,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
