package service

import (
	"context"

	"adoptions/internal/domain/entity"
)

// CreatureRecord is the full representation of a creature as returned by the
// creatures service. UpdateStatus must send every field back, so the whole
// shape is carried even though only name/species/status feed enrichment.
type CreatureRecord struct {
	CreatureID       string `json:"creatureId"`
	RegistrationCode string `json:"registrationCode"`
	Name             string `json:"name"`
	Species          string `json:"species"`
	Type             string `json:"type"`
	Rarity           string `json:"rarity"`
	Level            int    `json:"level"`
	Age              int    `json:"age"`
	Health           int    `json:"health"`
	Experience       int    `json:"experience"`
	Status           string `json:"status"`
	Strength         int    `json:"strength"`
	Intelligence     int    `json:"intelligence"`
	Agility          int    `json:"agility"`
	Temperament      string `json:"temperament"`
}

// CreatureClient reads and updates creatures in the creatures service.
type CreatureClient interface {
	// GetByID retrieves a creature by its public creature ID.
	GetByID(ctx context.Context, creatureID string) (*CreatureRecord, error)

	// UpdateStatus moves the remote creature to the given status. The
	// implementation performs a read-modify-write full replace: it is not
	// atomic and two racing orchestrations on the same creature can lose an
	// update. Keeping it behind this interface lets a concurrency token be
	// added later without touching the call sites.
	UpdateStatus(ctx context.Context, creatureID string, status entity.CreatureStatus) (*CreatureRecord, error)
}
