package services

import (
	"wxledger/internal/models"
)

type AccuracyTracker struct {
	access *AccessControl
	store  *models.AccuracyStore
}

func NewAccuracyTracker(access *AccessControl, store *models.AccuracyStore) *AccuracyTracker {
	return &AccuracyTracker{
		access: access,
		store:  store,
	}
}

// RecordResult counts one prediction against every subject key. Only the owner
// may record; a rejected call leaves every record untouched.
func (t *AccuracyTracker) RecordResult(sender models.Identity, isCorrect bool, keys ...models.SubjectKey) error {
	if !t.access.IsOwner(sender) {
		return models.ErrUnauthorized
	}
	for _, key := range keys {
		rec := t.store.GetOrDefault(key, models.AccuracyRecord{})
		t.store.Set(key, rec.Inc(isCorrect))
	}
	return nil
}

func (t *AccuracyTracker) GetAccuracy(key models.SubjectKey) int {
	return t.GetRecord(key).Percentage()
}

func (t *AccuracyTracker) GetRecord(key models.SubjectKey) models.AccuracyRecord {
	return t.store.GetOrDefault(key, models.AccuracyRecord{})
}

func (t *AccuracyTracker) Len() int {
	return t.store.Len()
}
