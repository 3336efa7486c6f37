package models

const SnapshotVersion = 1

type WeatherEntry struct {
	Location  string        `json:"location"`
	Timestamp uint64        `json:"timestamp"`
	Record    WeatherRecord `json:"record"`
}

// Storage is the persisted form of the whole ledger.
type Storage struct {
	Version  int                           `json:"version"`
	Height   uint64                        `json:"height"`
	Accuracy map[SubjectKey]AccuracyRecord `json:"accuracy"`
	Oracles  []Identity                    `json:"oracles"`
	Weather  []WeatherEntry                `json:"weather"`
}
