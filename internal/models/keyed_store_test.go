package models

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedStore_SetAndGet(t *testing.T) {
	s := NewAccuracyStore()
	s.Set(UserKey("u1"), AccuracyRecord{TotalPredictions: 3, CorrectPredictions: 2})

	val, ok := s.Get(UserKey("u1"))
	require.True(t, ok)
	assert.Equal(t, uint64(3), val.TotalPredictions)
	assert.Equal(t, uint64(2), val.CorrectPredictions)
}

func TestKeyedStore_GetMissing(t *testing.T) {
	s := NewWeatherStore()
	val, ok := s.Get(WeatherKey{Location: "Nowhere", Timestamp: 1})
	assert.False(t, ok)
	assert.Equal(t, WeatherRecord{}, val)
}

func TestKeyedStore_GetOrDefault(t *testing.T) {
	s := NewAccuracyStore()
	def := AccuracyRecord{}
	assert.Equal(t, def, s.GetOrDefault(UserKey("ghost"), def))

	s.Set(UserKey("u1"), AccuracyRecord{TotalPredictions: 1})
	assert.Equal(t, uint64(1), s.GetOrDefault(UserKey("u1"), def).TotalPredictions)
}

func TestKeyedStore_SetOverwrites(t *testing.T) {
	s := NewWeatherStore()
	key := WeatherKey{Location: "New York", Timestamp: 100}
	s.Set(key, WeatherRecord{Temperature: 25, Humidity: 60, WindSpeed: 10})
	s.Set(key, WeatherRecord{Temperature: -3})

	val, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, WeatherRecord{Temperature: -3}, val)
	assert.Equal(t, 1, s.Len())
}

func TestKeyedStore_Delete(t *testing.T) {
	s := NewOracleStore()
	s.Set("oracle1", true)
	s.Delete("oracle1")
	_, ok := s.Get("oracle1")
	assert.False(t, ok)

	// deleting an absent key is a no-op
	s.Delete("oracle1")
	assert.Equal(t, 0, s.Len())
}

func TestKeyedStore_GetDataReturnsCopy(t *testing.T) {
	s := NewOracleStore()
	s.Set("a", true)

	data := s.GetData()
	data["b"] = true

	assert.Equal(t, 1, s.Len())
}

func TestKeyedStore_PutDataReplaces(t *testing.T) {
	s := NewAccuracyStore()
	s.Set(UserKey("old"), AccuracyRecord{TotalPredictions: 1})

	in := map[SubjectKey]AccuracyRecord{
		LocationKey("London"): {TotalPredictions: 4, CorrectPredictions: 1},
	}
	s.PutData(in)
	in[LocationKey("Paris")] = AccuracyRecord{}

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(UserKey("old"))
	assert.False(t, ok)
}

func TestKeyedStore_ConcurrentAccess(t *testing.T) {
	s := NewOracleStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set(Identity(fmt.Sprintf("o%d", n)), true)
		}(i)
		go func(n int) {
			defer wg.Done()
			s.Get(Identity(fmt.Sprintf("o%d", n)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
