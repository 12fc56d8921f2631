// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adoptions/internal/domain/entity"
	"adoptions/internal/errors"
)

// Domain-specific errors for adoption persistence.
var (
	// ErrAdoptionNotFound is returned when an adoption is not found.
	ErrAdoptionNotFound = errors.New("adoption not found")
	// ErrDuplicateAdoption is returned when an adoption with the same identifier already exists.
	ErrDuplicateAdoption = errors.New("adoption already exists")
)

// AdoptionRepository defines the interface for adoption-related database
// operations. The store is keyed by the public adoption identifier; filters
// map 1:1 onto the query parameters the service accepts.
type AdoptionRepository interface {
	// Create persists a new adoption aggregate.
	Create(ctx context.Context, adoption *entity.Adoption) error

	// Save replaces the persisted state of an existing aggregate.
	Save(ctx context.Context, adoption *entity.Adoption) error

	// Delete removes the aggregate.
	Delete(ctx context.Context, adoption *entity.Adoption) error

	// FindByAdoptionID retrieves an adoption by its public adoption ID.
	FindByAdoptionID(ctx context.Context, adoptionID string) (*entity.Adoption, error)

	// FindAll retrieves every adoption.
	FindAll(ctx context.Context) ([]*entity.Adoption, error)

	// FindByCustomerID retrieves all adoptions referencing a customer.
	FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Adoption, error)

	// FindByCreatureID retrieves all adoptions referencing a creature.
	FindByCreatureID(ctx context.Context, creatureID string) ([]*entity.Adoption, error)

	// FindByProfileStatus retrieves all adoptions with the given profile status.
	FindByProfileStatus(ctx context.Context, status entity.ProfileStatus) ([]*entity.Adoption, error)

	// FindByAdoptionStatus retrieves all adoptions with the given adoption status.
	FindByAdoptionStatus(ctx context.Context, status entity.AdoptionStatus) ([]*entity.Adoption, error)

	// CountByCustomerAndStatus counts a customer's adoptions in the given status.
	CountByCustomerAndStatus(ctx context.Context, customerID string, status entity.AdoptionStatus) (int64, error)
}
