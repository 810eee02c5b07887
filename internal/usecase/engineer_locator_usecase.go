package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/domain/geo"
	"laptopcare/internal/usecase/interfaces"
)

var (
	ErrInvalidCoordinate    = errors.New("coordinate out of range")
	ErrNoEngineersAvailable = errors.New("no engineers available")
)

// IEngineerLocatorUseCase ranks engineers by great-circle distance from the
// caller. Engineers without a published location are never candidates.
//
// RadiusKM <= 0 means unbounded; Limit <= 0 means return everything.

type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
	Limit     int
}

type IEngineerLocatorUseCase interface {
	FindNearby(ctx context.Context, q NearbyQuery) ([]entities.NearbyEngineer, error)
	UpdateLocation(ctx context.Context, engineerID string, latitude, longitude float64) (entities.EngineerLocation, error)
}

type EngineerLocatorUseCase struct {
	locations interfaces.IEngineerLocationRepository
	users     interfaces.IUserRepository
}

var _ IEngineerLocatorUseCase = (*EngineerLocatorUseCase)(nil)

func NewEngineerLocatorUseCase(locations interfaces.IEngineerLocationRepository, users interfaces.IUserRepository) *EngineerLocatorUseCase {
	return &EngineerLocatorUseCase{locations: locations, users: users}
}

// FindNearby computes the distance to every engineer with a known location,
// filters by radius when one is given, and returns the roster sorted
// ascending by distance with engineer id as the tie-break so equal distances
// order deterministically.
//
// An empty roster is an error; an empty result after radius filtering is a
// valid empty response.
func (u *EngineerLocatorUseCase) FindNearby(ctx context.Context, q NearbyQuery) ([]entities.NearbyEngineer, error) {
	if !geo.ValidCoordinate(q.Latitude, q.Longitude) {
		return nil, ErrInvalidCoordinate
	}

	roster, err := u.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrNoEngineersAvailable
	}

	engineers, err := u.users.ListByRole(ctx, entities.RoleEngineer)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.User, len(engineers))
	for _, e := range engineers {
		byID[e.ID] = e
	}

	ranked := make([]entities.NearbyEngineer, 0, len(roster))
	for _, loc := range roster {
		eng, ok := byID[loc.EngineerID]
		if !ok {
			// Stale location row without a matching engineer account.
			continue
		}
		dist := geo.HaversineKM(q.Latitude, q.Longitude, loc.Latitude, loc.Longitude)
		if q.RadiusKM > 0 && dist > q.RadiusKM {
			continue
		}
		ranked = append(ranked, entities.NearbyEngineer{
			EngineerID: eng.ID,
			Name:       eng.Name,
			Email:      eng.Email,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKM: dist,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKM != ranked[j].DistanceKM {
			return ranked[i].DistanceKM < ranked[j].DistanceKM
		}
		return ranked[i].EngineerID < ranked[j].EngineerID
	})

	if q.Limit > 0 && len(ranked) > q.Limit {
		ranked = ranked[:q.Limit]
	}
	return ranked, nil
}

// UpdateLocation records the engineer's current position. Each write
// replaces the previous one, so rankings always use the freshest fix.
func (u *EngineerLocatorUseCase) UpdateLocation(ctx context.Context, engineerID string, latitude, longitude float64) (entities.EngineerLocation, error) {
	if !geo.ValidCoordinate(latitude, longitude) {
		return entities.EngineerLocation{}, ErrInvalidCoordinate
	}
	return u.locations.Put(ctx, entities.EngineerLocation{
		EngineerID: engineerID,
		Latitude:   latitude,
		Longitude:  longitude,
		UpdatedAt:  time.Now().UTC(),
	})
}
