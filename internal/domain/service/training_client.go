package service

import "context"

// TrainingRecord is the representation of a training program as returned by
// the trainings service.
type TrainingRecord struct {
	TrainingID  string  `json:"trainingId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"`
	Duration    int     `json:"duration"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
}

// TrainingClient reads trainings from the trainings service.
type TrainingClient interface {
	// GetByID retrieves a training by its public training ID.
	GetByID(ctx context.Context, trainingID string) (*TrainingRecord, error)
}
