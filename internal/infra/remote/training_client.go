package remote

import (
	"context"
	"log/slog"

	"adoptions/config"
	"adoptions/internal/domain/service"
)

type trainingClient struct {
	rest *restClient
}

// NewTrainingClient creates the HTTP client for the trainings service.
func NewTrainingClient(cfg *config.Config, logger *slog.Logger) service.TrainingClient {
	return &trainingClient{
		rest: newRESTClient("training", cfg.Services.Trainings, logger),
	}
}

// GetByID retrieves a training program by its public training ID.
func (c *trainingClient) GetByID(ctx context.Context, trainingID string) (*service.TrainingRecord, error) {
	var record service.TrainingRecord
	if err := c.rest.getJSON(ctx, "/api/v1/trainings/"+trainingID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
