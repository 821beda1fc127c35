package models

type Metadata struct {
	LastUpdated float64 `json:"lastUpdated"` // epoch millis; any JSON number
}
