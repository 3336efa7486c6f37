package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_JSONRoundtrip(t *testing.T) {
	original := Storage{
		Version: SnapshotVersion,
		Height:  100,
		Accuracy: map[SubjectKey]AccuracyRecord{
			UserKey("user1"): {TotalPredictions: 2, CorrectPredictions: 1},
		},
		Oracles: []Identity{"oracle1"},
		Weather: []WeatherEntry{
			{Location: "New York", Timestamp: 100, Record: WeatherRecord{Temperature: 25, Humidity: 60, WindSpeed: 10}},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Storage
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original, restored)
}

func TestStorage_WeatherRecordFieldNames(t *testing.T) {
	data, err := json.Marshal(WeatherRecord{Temperature: 25, Humidity: 60, WindSpeed: 10, Precipitation: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperature":25,"humidity":60,"windSpeed":10,"precipitation":0}`, string(data))
}

func TestStorage_NilFields(t *testing.T) {
	raw := `{"version":1}`
	var s Storage
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Nil(t, s.Accuracy)
	assert.Nil(t, s.Oracles)
	assert.Nil(t, s.Weather)
}
