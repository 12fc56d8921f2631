package impl

import (
	"context"
	"log/slog"
	"time"

	"adoptions/config"
	"adoptions/internal/domain/entity"
	domainerrors "adoptions/internal/domain/errors"
	"adoptions/internal/domain/repository"
	"adoptions/internal/domain/service"
	"adoptions/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const identifierLength = 36

type adoptionService struct {
	repo           repository.AdoptionRepository
	customerClient service.CustomerClient
	creatureClient service.CreatureClient
	trainingClient service.TrainingClient
	publisher      service.EventPublisher
	logger         *slog.Logger
	maxCompleted   int
}

// AdoptionServiceParams holds dependencies for the adoption service, injected by Fx.
type AdoptionServiceParams struct {
	fx.In

	Repo           repository.AdoptionRepository
	CustomerClient service.CustomerClient
	CreatureClient service.CreatureClient
	TrainingClient service.TrainingClient
	Publisher      service.EventPublisher `optional:"true"`
	Logger         *slog.Logger
	Config         *config.Config
}

// NewAdoptionService creates the adoption orchestration service. It owns the
// cross-service invariant checks; the aggregate itself never performs I/O.
func NewAdoptionService(params AdoptionServiceParams) usecase.AdoptionUsecase {
	return &adoptionService{
		repo:           params.Repo,
		customerClient: params.CustomerClient,
		creatureClient: params.CreatureClient,
		trainingClient: params.TrainingClient,
		publisher:      params.Publisher,
		logger:         params.Logger,
		maxCompleted:   params.Config.MaxCompletedAdoptions(),
	}
}

// List returns adoptions matching the filter, enriched one by one. An
// enrichment failure never fails the list call.
func (s *adoptionService) List(ctx context.Context, filter usecase.ListFilter) ([]*usecase.AdoptionDetails, error) {
	adoptions, err := s.queryAdoptions(ctx, filter)
	if err != nil {
		return nil, err
	}

	details := make([]*usecase.AdoptionDetails, 0, len(adoptions))
	for _, adoption := range adoptions {
		d := toDetails(adoption)
		s.enrich(ctx, d)
		details = append(details, d)
	}

	return details, nil
}

func (s *adoptionService) queryAdoptions(ctx context.Context, filter usecase.ListFilter) ([]*entity.Adoption, error) {
	switch {
	case filter.CustomerID != "":
		if len(filter.CustomerID) != identifierLength {
			return nil, domainerrors.ErrInvalidFilterID.WithMessagef("Invalid customerId provided: %s", filter.CustomerID)
		}

		return s.repo.FindByCustomerID(ctx, filter.CustomerID)
	case filter.CreatureID != "":
		if len(filter.CreatureID) != identifierLength {
			return nil, domainerrors.ErrInvalidFilterID.WithMessagef("Invalid creatureId provided: %s", filter.CreatureID)
		}

		return s.repo.FindByCreatureID(ctx, filter.CreatureID)
	case filter.ProfileStatus != "":
		status, ok := entity.ParseProfileStatus(filter.ProfileStatus)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithMessagef("Invalid profile status: %s", filter.ProfileStatus)
		}

		return s.repo.FindByProfileStatus(ctx, status)
	case filter.AdoptionStatus != "":
		status, ok := entity.ParseAdoptionStatus(filter.AdoptionStatus)
		if !ok {
			return nil, domainerrors.ErrInvalidAdoptionStatus.WithMessagef("Invalid adoption status: %s", filter.AdoptionStatus)
		}

		return s.repo.FindByAdoptionStatus(ctx, status)
	default:
		return s.repo.FindAll(ctx)
	}
}

// GetByID returns one adoption, enriched best effort.
func (s *adoptionService) GetByID(ctx context.Context, adoptionID string) (*usecase.AdoptionDetails, error) {
	adoption, err := s.loadAdoption(ctx, adoptionID)
	if err != nil {
		return nil, err
	}

	d := toDetails(adoption)
	s.enrich(ctx, d)

	return d, nil
}

// Create validates the referenced customer and creature, enforces the
// completed-adoption cap and the creature eligibility rule, then persists.
// All checks run before any mutation: a rejected request has zero side
// effects. The remote creature write happens before persistence and is not
// rolled back when persistence fails afterwards.
func (s *adoptionService) Create(ctx context.Context, input *usecase.AdoptionInput) (*usecase.AdoptionDetails, error) {
	customer, err := s.customerClient.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domainerrors.ErrCustomerNotFound.WithMessagef("Unknown customerId provided: %s", input.CustomerID)
	}

	creature, err := s.creatureClient.GetByID(ctx, input.CreatureID)
	if err != nil {
		return nil, err
	}
	if creature == nil {
		return nil, domainerrors.ErrCreatureNotFound.WithMessagef("Unknown creatureId provided: %s", input.CreatureID)
	}

	creatureStatus, ok := entity.ParseCreatureStatus(creature.Status)
	if !ok || !entity.AdoptableCreatureStatus(creatureStatus) {
		return nil, domainerrors.ErrCreatureNotAdoptable.WithMessagef(
			"Creature %s is not available for adoption. Current status: %s", input.CreatureID, creature.Status)
	}

	completed, err := s.repo.CountByCustomerAndStatus(ctx, input.CustomerID, entity.AdoptionCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed adoptions")
	}
	if err := entity.ValidateCustomerLimit(int(completed), s.maxCompleted); err != nil {
		return nil, err
	}

	adoption, err := s.newAdoptionFromInput(input)
	if err != nil {
		return nil, err
	}

	required, err := adoption.ApplyStatus(adoption.AdoptionStatus)
	if err != nil {
		return nil, err
	}
	if _, err := s.creatureClient.UpdateStatus(ctx, adoption.CreatureID, required); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, adoption); err != nil {
		return nil, errors.Wrap(err, "failed to create adoption")
	}

	s.publish(ctx, "created", adoption)

	d := toDetails(adoption)
	s.enrich(ctx, d)

	return d, nil
}

// Update replaces all mutable fields of an existing adoption, preserving its
// identity. A status change triggers the same transition side effect as a
// status-only update.
func (s *adoptionService) Update(ctx context.Context, input *usecase.AdoptionInput, adoptionID string) (*usecase.AdoptionDetails, error) {
	adoption, err := s.loadAdoption(ctx, adoptionID)
	if err != nil {
		return nil, err
	}

	previousStatus := adoption.AdoptionStatus

	newStatus := previousStatus
	if input.AdoptionStatus != "" {
		parsed, ok := entity.ParseAdoptionStatus(input.AdoptionStatus)
		if !ok {
			return nil, domainerrors.ErrInvalidAdoptionStatus.WithMessagef("Invalid adoption status: %s", input.AdoptionStatus)
		}
		newStatus = parsed
	}

	profileStatus, err := resolveProfileStatus(input.ProfileStatus)
	if err != nil {
		return nil, err
	}

	adoption.Summary = input.Summary
	adoption.SpecialNotes = input.SpecialNotes
	adoption.AdoptionLocation = input.AdoptionLocation
	adoption.TotalAdoptions = input.TotalAdoptions
	adoption.ProfileCreationDate = input.ProfileCreationDate
	adoption.AdoptionDate = input.AdoptionDate
	adoption.ProfileStatus = profileStatus
	adoption.CustomerID = input.CustomerID
	adoption.CreatureID = input.CreatureID
	adoption.TrainingID = input.TrainingID
	adoption.LastUpdated = time.Now()

	if newStatus != previousStatus {
		required, err := adoption.ApplyStatus(newStatus)
		if err != nil {
			return nil, err
		}
		if _, err := s.creatureClient.UpdateStatus(ctx, adoption.CreatureID, required); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, adoption); err != nil {
		return nil, errors.Wrap(err, "failed to save adoption")
	}

	if newStatus != previousStatus {
		s.publish(ctx, "status_changed", adoption)
	}

	d := toDetails(adoption)
	s.enrich(ctx, d)

	return d, nil
}

// UpdateStatus runs a status-only transition and its remote side effect.
func (s *adoptionService) UpdateStatus(ctx context.Context, adoptionID, newStatus string) (*usecase.AdoptionDetails, error) {
	adoption, err := s.loadAdoption(ctx, adoptionID)
	if err != nil {
		return nil, err
	}

	status, ok := entity.ParseAdoptionStatus(newStatus)
	if !ok {
		return nil, domainerrors.ErrInvalidAdoptionStatus.WithMessagef("Invalid adoption status: %s", newStatus)
	}

	required, err := adoption.ApplyStatus(status)
	if err != nil {
		return nil, err
	}
	if _, err := s.creatureClient.UpdateStatus(ctx, adoption.CreatureID, required); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, adoption); err != nil {
		return nil, errors.Wrap(err, "failed to save adoption")
	}

	s.publish(ctx, "status_changed", adoption)

	d := toDetails(adoption)
	s.enrich(ctx, d)

	return d, nil
}

// Remove deletes an adoption. Completed adoptions cannot be deleted; they
// must first be cancelled or returned. The referenced creature is reset to
// AVAILABLE before the local delete.
func (s *adoptionService) Remove(ctx context.Context, adoptionID string) error {
	adoption, err := s.loadAdoption(ctx, adoptionID)
	if err != nil {
		return err
	}

	if err := adoption.ValidateDeletion(); err != nil {
		return err
	}

	if _, err := s.creatureClient.UpdateStatus(ctx, adoption.CreatureID, entity.CreatureAvailable); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, adoption); err != nil {
		return errors.Wrap(err, "failed to delete adoption")
	}

	s.publish(ctx, "removed", adoption)

	return nil
}

func (s *adoptionService) loadAdoption(ctx context.Context, adoptionID string) (*entity.Adoption, error) {
	adoption, err := s.repo.FindByAdoptionID(ctx, adoptionID)
	if err != nil {
		if errors.Is(err, repository.ErrAdoptionNotFound) {
			return nil, domainerrors.ErrAdoptionNotFound.WithMessagef("Unknown adoptionId provided: %s", adoptionID)
		}

		return nil, errors.Wrap(err, "failed to find adoption")
	}

	return adoption, nil
}

func (s *adoptionService) newAdoptionFromInput(input *usecase.AdoptionInput) (*entity.Adoption, error) {
	status := entity.AdoptionPending
	if input.AdoptionStatus != "" {
		parsed, ok := entity.ParseAdoptionStatus(input.AdoptionStatus)
		if !ok {
			return nil, domainerrors.ErrInvalidAdoptionStatus.WithMessagef("Invalid adoption status: %s", input.AdoptionStatus)
		}
		status = parsed
	}

	profileStatus, err := resolveProfileStatus(input.ProfileStatus)
	if err != nil {
		return nil, err
	}

	profileCreationDate := input.ProfileCreationDate
	if profileCreationDate.IsZero() {
		profileCreationDate = time.Now()
	}

	return &entity.Adoption{
		ID:                  uuid.New(),
		Identifier:          entity.NewAdoptionIdentifier(""),
		Summary:             input.Summary,
		SpecialNotes:        input.SpecialNotes,
		AdoptionLocation:    input.AdoptionLocation,
		TotalAdoptions:      input.TotalAdoptions,
		ProfileCreationDate: profileCreationDate,
		AdoptionDate:        input.AdoptionDate,
		LastUpdated:         time.Now(),
		ProfileStatus:       profileStatus,
		AdoptionStatus:      status,
		CustomerID:          input.CustomerID,
		CreatureID:          input.CreatureID,
		TrainingID:          input.TrainingID,
	}, nil
}

func resolveProfileStatus(raw string) (entity.ProfileStatus, error) {
	if raw == "" {
		return entity.ProfileActive, nil
	}

	status, ok := entity.ParseProfileStatus(raw)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithMessagef("Invalid profile status: %s", raw)
	}

	return status, nil
}

// enrich populates display fields from the dependent services. Each lookup
// is independent and best effort: a failure is logged and its fields stay
// unset, so a dependency outage never turns into a failed read.
func (s *adoptionService) enrich(ctx context.Context, d *usecase.AdoptionDetails) {
	if customer, err := s.customerClient.GetByID(ctx, d.CustomerID); err != nil {
		s.logger.Warn("customer enrichment failed",
			slog.String("customerId", d.CustomerID),
			slog.Any("error", err),
		)
	} else if customer != nil {
		d.CustomerFirstName = customer.FirstName
		d.CustomerLastName = customer.LastName
	}

	if creature, err := s.creatureClient.GetByID(ctx, d.CreatureID); err != nil {
		s.logger.Warn("creature enrichment failed",
			slog.String("creatureId", d.CreatureID),
			slog.Any("error", err),
		)
	} else if creature != nil {
		d.CreatureName = creature.Name
		d.CreatureSpecies = creature.Species
		if status, ok := entity.ParseCreatureStatus(creature.Status); ok {
			d.CreatureStatus = status
		}
	}

	// Training fields always reflect the current reference: cleared when the
	// adoption carries no trainingId.
	if d.TrainingID == "" {
		d.TrainingName = ""
		d.TrainingLocation = ""

		return
	}

	if training, err := s.trainingClient.GetByID(ctx, d.TrainingID); err != nil {
		s.logger.Warn("training enrichment failed",
			slog.String("trainingId", d.TrainingID),
			slog.Any("error", err),
		)
	} else if training != nil {
		d.TrainingName = training.Name
		d.TrainingLocation = training.Location
	}
}

// publish emits an adoption lifecycle event, best effort.
func (s *adoptionService) publish(ctx context.Context, action string, adoption *entity.Adoption) {
	if s.publisher == nil {
		return
	}

	event := &service.AdoptionEvent{
		AdoptionID:     adoption.Identifier.AdoptionID,
		AdoptionCode:   adoption.Identifier.AdoptionCode,
		CustomerID:     adoption.CustomerID,
		CreatureID:     adoption.CreatureID,
		AdoptionStatus: string(adoption.AdoptionStatus),
		Action:         action,
		OccurredAt:     time.Now().UTC(),
	}

	if err := s.publisher.PublishAdoptionEvent(ctx, event); err != nil {
		s.logger.Warn("adoption event publish failed",
			slog.String("adoptionId", event.AdoptionID),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

func toDetails(adoption *entity.Adoption) *usecase.AdoptionDetails {
	return &usecase.AdoptionDetails{
		AdoptionID:          adoption.Identifier.AdoptionID,
		AdoptionCode:        adoption.Identifier.AdoptionCode,
		Summary:             adoption.Summary,
		TotalAdoptions:      adoption.TotalAdoptions,
		ProfileCreationDate: adoption.ProfileCreationDate,
		LastUpdated:         adoption.LastUpdated,
		ProfileStatus:       adoption.ProfileStatus,
		AdoptionDate:        adoption.AdoptionDate,
		AdoptionLocation:    adoption.AdoptionLocation,
		AdoptionStatus:      adoption.AdoptionStatus,
		SpecialNotes:        adoption.SpecialNotes,
		CustomerID:          adoption.CustomerID,
		CreatureID:          adoption.CreatureID,
		TrainingID:          adoption.TrainingID,
	}
}
