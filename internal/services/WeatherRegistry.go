package services

import (
	"sort"
	"wxledger/internal/models"
)

// WeatherRegistry stores oracle readings by (location, timestamp). It keeps no
// authorization state; oracle checks go through AccessControl.
type WeatherRegistry struct {
	access *AccessControl
	store  *models.WeatherStore
}

func NewWeatherRegistry(access *AccessControl, store *models.WeatherStore) *WeatherRegistry {
	return &WeatherRegistry{
		access: access,
		store:  store,
	}
}

// AddWeatherData replaces whatever was stored at (location, timestamp).
func (w *WeatherRegistry) AddWeatherData(sender models.Identity, location string, timestamp uint64, record models.WeatherRecord) error {
	if !w.access.IsAuthorizedOracle(sender) {
		return models.ErrUnauthorized
	}
	w.store.Set(models.WeatherKey{Location: location, Timestamp: timestamp}, record)
	return nil
}

func (w *WeatherRegistry) GetWeatherData(location string, timestamp uint64) (models.WeatherRecord, bool) {
	return w.store.Get(models.WeatherKey{Location: location, Timestamp: timestamp})
}

func (w *WeatherRegistry) Len() int {
	return w.store.Len()
}

// Entries lists every record ordered by location, then timestamp.
func (w *WeatherRegistry) Entries() []models.WeatherEntry {
	data := w.store.GetData()
	entries := make([]models.WeatherEntry, 0, len(data))
	for k, v := range data {
		entries = append(entries, models.WeatherEntry{Location: k.Location, Timestamp: k.Timestamp, Record: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Location != entries[j].Location {
			return entries[i].Location < entries[j].Location
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
	return entries
}

func (w *WeatherRegistry) putEntries(entries []models.WeatherEntry) {
	data := make(map[models.WeatherKey]models.WeatherRecord, len(entries))
	for _, e := range entries {
		data[models.WeatherKey{Location: e.Location, Timestamp: e.Timestamp}] = e.Record
	}
	w.store.PutData(data)
}
