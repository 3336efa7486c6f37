package models

type WeatherKey struct {
	Location  string
	Timestamp uint64
}

type WeatherRecord struct {
	Temperature   int64 `json:"temperature"`
	Humidity      int64 `json:"humidity"`
	WindSpeed     int64 `json:"windSpeed"`
	Precipitation int64 `json:"precipitation"`
}

type WeatherStore = KeyedStore[WeatherKey, WeatherRecord]

func NewWeatherStore() *WeatherStore {
	return NewKeyedStore[WeatherKey, WeatherRecord]()
}
