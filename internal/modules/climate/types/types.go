package types

// Station is one weather station from the cleaned hawaii_stations dataset.
// The station code is a natural key by convention only; duplicates are
// tolerated all the way down to the store.
type Station struct {
	Station   string  `json:"station"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

// Measurement is one daily observation from the cleaned hawaii_measurements
// dataset. Date keeps its source yyyy-mm-dd form; it is stored and compared
// as text, never parsed into a time.Time.
type Measurement struct {
	Station string  `json:"station"`
	Date    string  `json:"date"`
	Prcp    float64 `json:"prcp"`
	Tobs    int     `json:"tobs"`
}

// PrecipitationPoint is one date's precipitation reading.
type PrecipitationPoint struct {
	Date string  `json:"date"`
	Prcp float64 `json:"prcp"`
}

// TemperatureStats summarizes observed temperatures over a date range.
type TemperatureStats struct {
	Min int     `json:"tmin"`
	Avg float64 `json:"tavg"`
	Max int     `json:"tmax"`
}

// StationActivity is the observation count for one station code.
type StationActivity struct {
	Station      string `json:"station"`
	Observations int    `json:"observations"`
}
