package request

// NearbyRequest asks for engineers ranked by distance from the caller.
// Coordinates are pointers so zero values (the equator, the prime meridian)
// bind; range validation happens in the use case.
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	RadiusKM  float64  `json:"radius_km"`
	Limit     int      `json:"limit"`
}

// LocationUpdateRequest publishes an engineer's current position.
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}
