// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"adoptions/internal/domain/entity"
	domainerrors "adoptions/internal/domain/errors"
	"adoptions/internal/domain/repository"
	"adoptions/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adoptionRepository implements the repository.AdoptionRepository interface.
type adoptionRepository struct {
	db *gorm.DB
}

// NewAdoptionRepository is the constructor for adoptionRepository.
func NewAdoptionRepository(db *gorm.DB) repository.AdoptionRepository {
	return &adoptionRepository{
		db: db,
	}
}

// Create persists a new adoption aggregate.
func (repo *adoptionRepository) Create(ctx context.Context, adoption *entity.Adoption) error {
	adoptionM := fromAdoptionDomain(adoption)

	if err := repo.db.WithContext(ctx).Create(adoptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdoption
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adoption")
	}

	adoption.ID = adoptionM.ID

	return nil
}

// Save replaces the persisted state of an existing aggregate, keyed by its
// public adoption ID.
func (repo *adoptionRepository) Save(ctx context.Context, adoption *entity.Adoption) error {
	adoptionM := fromAdoptionDomain(adoption)

	result := repo.db.WithContext(ctx).
		Model(&model.AdoptionModel{}).
		Where("adoption_id = ?", adoption.Identifier.AdoptionID).
		Select("*").
		Omit("id", "adoption_id", "adoption_code").
		Updates(adoptionM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save adoption")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdoptionNotFound
	}

	return nil
}

// Delete removes the aggregate.
func (repo *adoptionRepository) Delete(ctx context.Context, adoption *entity.Adoption) error {
	result := repo.db.WithContext(ctx).
		Where("adoption_id = ?", adoption.Identifier.AdoptionID).
		Delete(&model.AdoptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete adoption")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdoptionNotFound
	}

	return nil
}

// FindByAdoptionID retrieves an adoption by its public adoption ID.
func (repo *adoptionRepository) FindByAdoptionID(ctx context.Context, adoptionID string) (*entity.Adoption, error) {
	var adoptionM model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Where("adoption_id = ?", adoptionID).
		First(&adoptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdoptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption by ID")
	}

	return toAdoptionDomain(&adoptionM), nil
}

// FindAll retrieves every adoption.
func (repo *adoptionRepository) FindAll(ctx context.Context) ([]*entity.Adoption, error) {
	var adoptionModels []*model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Order("profile_creation_date DESC").
		Find(&adoptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoptions")
	}

	return toAdoptionDomainSlice(adoptionModels), nil
}

// FindByCustomerID retrieves all adoptions referencing a customer.
func (repo *adoptionRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Adoption, error) {
	var adoptionModels []*model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("profile_creation_date DESC").
		Find(&adoptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoptions by customer")
	}

	return toAdoptionDomainSlice(adoptionModels), nil
}

// FindByCreatureID retrieves all adoptions referencing a creature.
func (repo *adoptionRepository) FindByCreatureID(ctx context.Context, creatureID string) ([]*entity.Adoption, error) {
	var adoptionModels []*model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Where("creature_id = ?", creatureID).
		Order("profile_creation_date DESC").
		Find(&adoptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoptions by creature")
	}

	return toAdoptionDomainSlice(adoptionModels), nil
}

// FindByProfileStatus retrieves all adoptions with the given profile status.
func (repo *adoptionRepository) FindByProfileStatus(ctx context.Context, status entity.ProfileStatus) ([]*entity.Adoption, error) {
	var adoptionModels []*model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Where("profile_status = ?", string(status)).
		Order("profile_creation_date DESC").
		Find(&adoptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoptions by profile status")
	}

	return toAdoptionDomainSlice(adoptionModels), nil
}

// FindByAdoptionStatus retrieves all adoptions with the given adoption status.
func (repo *adoptionRepository) FindByAdoptionStatus(ctx context.Context, status entity.AdoptionStatus) ([]*entity.Adoption, error) {
	var adoptionModels []*model.AdoptionModel

	if err := repo.db.WithContext(ctx).
		Where("adoption_status = ?", string(status)).
		Order("profile_creation_date DESC").
		Find(&adoptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoptions by adoption status")
	}

	return toAdoptionDomainSlice(adoptionModels), nil
}

// CountByCustomerAndStatus counts a customer's adoptions in the given status.
func (repo *adoptionRepository) CountByCustomerAndStatus(ctx context.Context, customerID string, status entity.AdoptionStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdoptionModel{}).
		Where("customer_id = ? AND adoption_status = ?", customerID, string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count adoptions by customer and status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAdoptionDomain converts a GORM AdoptionModel to a domain Adoption entity.
func toAdoptionDomain(data *model.AdoptionModel) *entity.Adoption {
	if data == nil {
		return nil
	}

	return &entity.Adoption{
		ID: data.ID,
		Identifier: entity.AdoptionIdentifier{
			AdoptionID:   data.AdoptionID,
			AdoptionCode: data.AdoptionCode,
		},
		Summary:             data.Summary,
		SpecialNotes:        data.SpecialNotes,
		AdoptionLocation:    data.AdoptionLocation,
		TotalAdoptions:      data.TotalAdoptions,
		ProfileCreationDate: data.ProfileCreationDate,
		AdoptionDate:        data.AdoptionDate,
		LastUpdated:         data.LastUpdated,
		ProfileStatus:       entity.ProfileStatus(data.ProfileStatus),
		AdoptionStatus:      entity.AdoptionStatus(data.AdoptionStatus),
		CustomerID:          data.CustomerID,
		CreatureID:          data.CreatureID,
		TrainingID:          data.TrainingID,
	}
}

func toAdoptionDomainSlice(data []*model.AdoptionModel) []*entity.Adoption {
	adoptions := make([]*entity.Adoption, 0, len(data))
	for _, adoptionM := range data {
		adoptions = append(adoptions, toAdoptionDomain(adoptionM))
	}

	return adoptions
}

// fromAdoptionDomain converts a domain Adoption entity to a GORM AdoptionModel.
func fromAdoptionDomain(data *entity.Adoption) *model.AdoptionModel {
	if data == nil {
		return nil
	}

	return &model.AdoptionModel{
		ID:                  data.ID,
		AdoptionID:          data.Identifier.AdoptionID,
		AdoptionCode:        data.Identifier.AdoptionCode,
		Summary:             data.Summary,
		SpecialNotes:        data.SpecialNotes,
		AdoptionLocation:    data.AdoptionLocation,
		TotalAdoptions:      data.TotalAdoptions,
		ProfileCreationDate: data.ProfileCreationDate,
		AdoptionDate:        data.AdoptionDate,
		LastUpdated:         data.LastUpdated,
		ProfileStatus:       string(data.ProfileStatus),
		AdoptionStatus:      string(data.AdoptionStatus),
		CustomerID:          data.CustomerID,
		CreatureID:          data.CreatureID,
		TrainingID:          data.TrainingID,
	}
}
