// Package usecase defines the application's inbound operation contracts.
package usecase

import (
	"context"
	"time"

	"adoptions/internal/domain/entity"
)

// AdoptionInput carries the client-supplied fields of a create or full
// update. Identity fields (adoptionId, adoptionCode) are never accepted from
// the client; they are generated once at creation.
type AdoptionInput struct {
	Summary             string    `json:"summary"`
	TotalAdoptions      int       `json:"totalAdoptions"`
	ProfileCreationDate time.Time `json:"profileCreationDate"`
	ProfileStatus       string    `json:"profileStatus"`
	AdoptionDate        time.Time `json:"adoptionDate"`
	AdoptionLocation    string    `json:"adoptionLocation"`
	AdoptionStatus      string    `json:"adoptionStatus"`
	SpecialNotes        string    `json:"specialNotes"`
	CustomerID          string    `json:"customerId" validate:"required,len=36"`
	CreatureID          string    `json:"creatureId" validate:"required,len=36"`
	TrainingID          string    `json:"trainingId" validate:"omitempty,len=36"`
}

// AdoptionDetails is the response form of an adoption: the aggregate's own
// fields plus the best-effort enrichment fetched from the dependent
// services. Enrichment fields stay empty when their lookup fails.
type AdoptionDetails struct {
	AdoptionID          string                `json:"adoptionId"`
	AdoptionCode        string                `json:"adoptionCode"`
	Summary             string                `json:"summary"`
	TotalAdoptions      int                   `json:"totalAdoptions"`
	ProfileCreationDate time.Time             `json:"profileCreationDate"`
	LastUpdated         time.Time             `json:"lastUpdated"`
	ProfileStatus       entity.ProfileStatus  `json:"profileStatus"`
	AdoptionDate        time.Time             `json:"adoptionDate"`
	AdoptionLocation    string                `json:"adoptionLocation"`
	AdoptionStatus      entity.AdoptionStatus `json:"adoptionStatus"`
	SpecialNotes        string                `json:"specialNotes"`

	// Customer details
	CustomerID        string `json:"customerId"`
	CustomerFirstName string `json:"customerFirstName,omitempty"`
	CustomerLastName  string `json:"customerLastName,omitempty"`

	// Creature details
	CreatureID      string                `json:"creatureId"`
	CreatureName    string                `json:"creatureName,omitempty"`
	CreatureSpecies string                `json:"creatureSpecies,omitempty"`
	CreatureStatus  entity.CreatureStatus `json:"creatureStatus,omitempty"`

	// Training details
	TrainingID       string `json:"trainingId,omitempty"`
	TrainingName     string `json:"trainingName,omitempty"`
	TrainingLocation string `json:"trainingLocation,omitempty"`
}

// ListFilter selects adoptions by at most one key. An empty filter returns
// everything.
type ListFilter struct {
	CustomerID     string
	CreatureID     string
	ProfileStatus  string
	AdoptionStatus string
}

// AdoptionUsecase defines the adoption orchestration operations.
type AdoptionUsecase interface {
	// List returns adoptions matching the filter, each enriched best effort.
	List(ctx context.Context, filter ListFilter) ([]*AdoptionDetails, error)

	// GetByID returns one enriched adoption.
	GetByID(ctx context.Context, adoptionID string) (*AdoptionDetails, error)

	// Create validates the referenced customer and creature, enforces the
	// business invariants, persists a new aggregate and propagates the
	// required creature status.
	Create(ctx context.Context, input *AdoptionInput) (*AdoptionDetails, error)

	// Update replaces all mutable fields of an existing adoption, keeping
	// its identity, and propagates the creature status when it changed.
	Update(ctx context.Context, input *AdoptionInput, adoptionID string) (*AdoptionDetails, error)

	// UpdateStatus runs a status-only transition with its remote side effect.
	UpdateStatus(ctx context.Context, adoptionID, newStatus string) (*AdoptionDetails, error)

	// Remove deletes an adoption after resetting the creature to AVAILABLE.
	Remove(ctx context.Context, adoptionID string) error
}
