package interfaces

import (
	"context"

	"laptopcare/internal/domain/entities"
)

// IEngineerLocationRepository abstracts persistence for engineer positions.
//
// Put replaces any previous location for the engineer (latest write wins).
// List returns the full roster of engineers with a known location.

type IEngineerLocationRepository interface {
	Put(ctx context.Context, loc entities.EngineerLocation) (entities.EngineerLocation, error)
	List(ctx context.Context) ([]entities.EngineerLocation, error)
}
