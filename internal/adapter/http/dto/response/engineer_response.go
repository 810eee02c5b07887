package response

import (
	"time"

	"laptopcare/internal/domain/entities"
)

type NearbyEngineerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKM float64 `json:"distance_km"`
}

func FromNearbyEngineers(engineers []entities.NearbyEngineer) []NearbyEngineerResponse {
	out := make([]NearbyEngineerResponse, 0, len(engineers))
	for _, e := range engineers {
		out = append(out, NearbyEngineerResponse{
			ID:         e.EngineerID,
			Name:       e.Name,
			Email:      e.Email,
			Latitude:   e.Latitude,
			Longitude:  e.Longitude,
			DistanceKM: e.DistanceKM,
		})
	}
	return out
}

type EngineerLocationResponse struct {
	EngineerID string    `json:"engineer_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromEngineerLocation(loc entities.EngineerLocation) EngineerLocationResponse {
	return EngineerLocationResponse{
		EngineerID: loc.EngineerID,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		UpdatedAt:  loc.UpdatedAt,
	}
}
