package model

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionModel is the GORM-specific struct for the 'adoptions' table. The
// public identifier pair (adoption_id, adoption_code) is stored alongside the
// surrogate primary key; lookups from the API always go through adoption_id.
type AdoptionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdoptionID          string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	AdoptionCode        string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	Summary             string    `gorm:"type:text"`
	SpecialNotes        string    `gorm:"type:text"`
	AdoptionLocation    string    `gorm:"type:varchar(255)"`
	TotalAdoptions      int       `gorm:"not null;default:0"`
	ProfileCreationDate time.Time
	AdoptionDate        time.Time
	LastUpdated         time.Time
	ProfileStatus       string `gorm:"type:varchar(16);not null;index"`
	AdoptionStatus      string `gorm:"type:varchar(16);not null;index"`
	CustomerID          string `gorm:"type:varchar(36);not null;index"`
	CreatureID          string `gorm:"type:varchar(36);not null;index"`
	TrainingID          string `gorm:"type:varchar(36)"`
}

// TableName explicitly sets the table name for GORM.
func (AdoptionModel) TableName() string {
	return "adoptions"
}
