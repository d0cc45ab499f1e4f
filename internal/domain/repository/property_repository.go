package repository

import (
	"context"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/google/uuid"
)

// PropertyRepository is the key/value store for properties.
type PropertyRepository interface {
	// Save stores a property under its ID, overwriting any previous value.
	Save(ctx context.Context, property *domain.Property) error

	// GetByID returns a stored property or errors.ErrPropertyNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// List returns all stored properties.
	List(ctx context.Context) ([]*domain.Property, error)

	// Delete removes a stored property.
	Delete(ctx context.Context, id uuid.UUID) error

	// NextIndex reserves and returns the next persisted-property index.
	// Implementations must make the increment atomic.
	NextIndex(ctx context.Context) (int, error)
}
