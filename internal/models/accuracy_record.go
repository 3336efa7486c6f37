package models

const (
	userKeyPrefix     = "user-"
	locationKeyPrefix = "location-"
)

// SubjectKey identifies the accuracy record of a user or of a location.
type SubjectKey string

func UserKey(user string) SubjectKey {
	return SubjectKey(userKeyPrefix + user)
}

func LocationKey(location string) SubjectKey {
	return SubjectKey(locationKeyPrefix + location)
}

type AccuracyRecord struct {
	TotalPredictions   uint64 `json:"totalPredictions"`
	CorrectPredictions uint64 `json:"correctPredictions"`
}

// Inc counts one more prediction and returns the updated record.
func (r AccuracyRecord) Inc(isCorrect bool) AccuracyRecord {
	r.TotalPredictions++
	if isCorrect {
		r.CorrectPredictions++
	}
	return r
}

// Percentage is the truncated integer share of correct predictions, 0 when
// nothing has been recorded yet.
func (r AccuracyRecord) Percentage() int {
	if r.TotalPredictions == 0 {
		return 0
	}
	return int(r.CorrectPredictions * 100 / r.TotalPredictions)
}

type AccuracyStore = KeyedStore[SubjectKey, AccuracyRecord]

func NewAccuracyStore() *AccuracyStore {
	return NewKeyedStore[SubjectKey, AccuracyRecord]()
}
