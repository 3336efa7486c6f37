package services

import (
	"sync"
	"wxledger/internal/models"
	"wxledger/internal/structures"
)

const (
	StoreAccuracy = "accuracy"
	StoreWeather  = "weather"
	StoreOracles  = "oracles"
)

type LedgerStatsInterface interface {
	Height() uint64
	RecordCounts() map[string]int
}

type LedgerInterface interface {
	LedgerStatsInterface
	Apply(fn func())
	AdvanceBlock() uint64
	Snapshot() *models.Storage
	Restore(storage *models.Storage)
	Access() *AccessControl
	Accuracy() *AccuracyTracker
	Weather() *WeatherRegistry
}

// Ledger owns every store and is the single point through which calls are
// serialized: Apply, Snapshot and Restore never overlap.
type Ledger struct {
	mu       sync.Mutex
	clock    BlockClockInterface
	access   *AccessControl
	accuracy *AccuracyTracker
	weather  *WeatherRegistry
}

func NewLedger(conf *structures.Config) LedgerInterface {
	access := NewAccessControl(models.Identity(conf.Ledger.Owner), models.NewOracleStore())
	return &Ledger{
		clock:    NewBlockClock(conf.Ledger.GenesisHeight),
		access:   access,
		accuracy: NewAccuracyTracker(access, models.NewAccuracyStore()),
		weather:  NewWeatherRegistry(access, models.NewWeatherStore()),
	}
}

func (l *Ledger) Apply(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

func (l *Ledger) Height() uint64 {
	return l.clock.Height()
}

func (l *Ledger) AdvanceBlock() uint64 {
	return l.clock.Advance()
}

func (l *Ledger) Access() *AccessControl {
	return l.access
}

func (l *Ledger) Accuracy() *AccuracyTracker {
	return l.accuracy
}

func (l *Ledger) Weather() *WeatherRegistry {
	return l.weather
}

func (l *Ledger) RecordCounts() map[string]int {
	return map[string]int{
		StoreAccuracy: l.accuracy.Len(),
		StoreWeather:  l.weather.Len(),
		StoreOracles:  len(l.access.Oracles()),
	}
}

func (l *Ledger) Snapshot() *models.Storage {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &models.Storage{
		Version:  models.SnapshotVersion,
		Height:   l.clock.Height(),
		Accuracy: l.accuracy.store.GetData(),
		Oracles:  l.access.Oracles(),
		Weather:  l.weather.Entries(),
	}
}

// Restore replaces every store with the snapshot contents. The block height
// never moves backwards.
func (l *Ledger) Restore(storage *models.Storage) {
	if storage == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clock.AdvanceTo(storage.Height)
	l.accuracy.store.PutData(storage.Accuracy)
	l.access.putOracles(storage.Oracles)
	l.weather.putEntries(storage.Weather)
}
