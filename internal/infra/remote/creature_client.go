package remote

import (
	"context"
	"log/slog"

	"adoptions/config"
	"adoptions/internal/domain/entity"
	"adoptions/internal/domain/service"
)

type creatureClient struct {
	rest *restClient
}

// NewCreatureClient creates the HTTP client for the creatures service.
func NewCreatureClient(cfg *config.Config, logger *slog.Logger) service.CreatureClient {
	return &creatureClient{
		rest: newRESTClient("creature", cfg.Services.Creatures, logger),
	}
}

// creatureUpdateRequest is the full-replace PUT body accepted by the
// creatures service. Identity fields (creatureId, registrationCode) are
// never sent.
type creatureUpdateRequest struct {
	Name         string `json:"name"`
	Species      string `json:"species"`
	Type         string `json:"type"`
	Rarity       string `json:"rarity"`
	Level        int    `json:"level"`
	Age          int    `json:"age"`
	Health       int    `json:"health"`
	Experience   int    `json:"experience"`
	Status       string `json:"status"`
	Strength     int    `json:"strength"`
	Intelligence int    `json:"intelligence"`
	Agility      int    `json:"agility"`
	Temperament  string `json:"temperament"`
}

// GetByID retrieves a creature by its public creature ID.
func (c *creatureClient) GetByID(ctx context.Context, creatureID string) (*service.CreatureRecord, error) {
	var record service.CreatureRecord
	if err := c.rest.getJSON(ctx, "/api/v1/creatures/"+creatureID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateStatus moves the remote creature to the given status via
// read-modify-write: the current record is fetched, copied field for field
// with the status overwritten, and sent back as a full replace.
func (c *creatureClient) UpdateStatus(ctx context.Context, creatureID string, status entity.CreatureStatus) (*service.CreatureRecord, error) {
	existing, err := c.GetByID(ctx, creatureID)
	if err != nil {
		return nil, err
	}

	update := creatureUpdateRequest{
		Name:         existing.Name,
		Species:      existing.Species,
		Type:         existing.Type,
		Rarity:       existing.Rarity,
		Level:        existing.Level,
		Age:          existing.Age,
		Health:       existing.Health,
		Experience:   existing.Experience,
		Status:       string(status),
		Strength:     existing.Strength,
		Intelligence: existing.Intelligence,
		Agility:      existing.Agility,
		Temperament:  existing.Temperament,
	}

	var record service.CreatureRecord
	if err := c.rest.putJSON(ctx, "/api/v1/creatures/"+creatureID, update, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
