package entities

import "time"

// EngineerLocation is the current position of an engineer.
//
// Storage model (DynamoDB):
//   - PK: engineer_id
//
// One row per engineer; each write replaces the previous one, so the locator
// always ranks against the most recently supplied coordinates.

type EngineerLocation struct {
	EngineerID string    `json:"engineer_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NearbyEngineer is a roster entry ranked by the locator.
type NearbyEngineer struct {
	EngineerID string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKM float64 `json:"distance_km"`
}
