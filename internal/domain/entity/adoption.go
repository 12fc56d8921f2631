// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	domainerrors "adoptions/internal/domain/errors"

	"github.com/google/uuid"
)

// AdoptionStatus is the lifecycle status of an adoption record.
type AdoptionStatus string

const (
	AdoptionPending   AdoptionStatus = "PENDING"
	AdoptionApproved  AdoptionStatus = "APPROVED"
	AdoptionCompleted AdoptionStatus = "COMPLETED"
	AdoptionCancelled AdoptionStatus = "CANCELLED"
	AdoptionReturned  AdoptionStatus = "RETURNED"
)

// ParseAdoptionStatus parses the string form of an adoption status.
func ParseAdoptionStatus(s string) (AdoptionStatus, bool) {
	switch AdoptionStatus(strings.ToUpper(s)) {
	case AdoptionPending, AdoptionApproved, AdoptionCompleted, AdoptionCancelled, AdoptionReturned:
		return AdoptionStatus(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// ProfileStatus indicates whether an adoption profile is active.
type ProfileStatus string

const (
	ProfileActive   ProfileStatus = "ACTIVE"
	ProfileInactive ProfileStatus = "INACTIVE"
)

// ParseProfileStatus parses the string form of a profile status.
func ParseProfileStatus(s string) (ProfileStatus, bool) {
	switch ProfileStatus(strings.ToUpper(s)) {
	case ProfileActive, ProfileInactive:
		return ProfileStatus(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// CreatureStatus is the availability status of a creature as held by the
// remote creatures service. The adoption aggregate never owns this value,
// it only computes which status the remote record must be moved to.
type CreatureStatus string

const (
	CreatureAvailable       CreatureStatus = "AVAILABLE"
	CreatureAdoptionPending CreatureStatus = "ADOPTION_PENDING"
	CreatureReserved        CreatureStatus = "RESERVED"
	CreatureAdopted         CreatureStatus = "ADOPTED"
)

// ParseCreatureStatus parses the string form of a creature status.
func ParseCreatureStatus(s string) (CreatureStatus, bool) {
	switch CreatureStatus(strings.ToUpper(s)) {
	case CreatureAvailable, CreatureAdoptionPending, CreatureReserved, CreatureAdopted:
		return CreatureStatus(strings.ToUpper(s)), true
	default:
		return "", false
	}
}

// AdoptionIdentifier is the public identity of an adoption: an opaque UUID
// plus a human-readable code. Both are generated once at creation and are
// immutable afterwards.
type AdoptionIdentifier struct {
	AdoptionID   string `json:"adoption_id"`
	AdoptionCode string `json:"adoption_code"`
}

// NewAdoptionIdentifier generates a fresh identifier. When code is empty, a
// code of the form "ADO-XXXXXXXX" is synthesized from a truncated random UUID.
func NewAdoptionIdentifier(code string) AdoptionIdentifier {
	if code == "" {
		code = "ADO-" + strings.ToUpper(uuid.NewString()[:8])
	}

	return AdoptionIdentifier{
		AdoptionID:   uuid.NewString(),
		AdoptionCode: code,
	}
}

// Adoption is the aggregate root. customerId/creatureId/trainingId are weak
// references into other subdomains, resolved only via remote lookup.
type Adoption struct {
	ID                  uuid.UUID          `json:"id"`
	Identifier          AdoptionIdentifier `json:"identifier"`
	Summary             string             `json:"summary"`
	SpecialNotes        string             `json:"special_notes"`
	AdoptionLocation    string             `json:"adoption_location"`
	TotalAdoptions      int                `json:"total_adoptions"`
	ProfileCreationDate time.Time          `json:"profile_creation_date"`
	AdoptionDate        time.Time          `json:"adoption_date"`
	LastUpdated         time.Time          `json:"last_updated"`
	ProfileStatus       ProfileStatus      `json:"profile_status"`
	AdoptionStatus      AdoptionStatus     `json:"adoption_status"`
	CustomerID          string             `json:"customer_id"`
	CreatureID          string             `json:"creature_id"`
	TrainingID          string             `json:"training_id"`
}

// RequiredCreatureStatus returns the remote creature status that must
// accompany the given adoption status. This is the pure core of the status
// state machine; it performs no I/O.
func RequiredCreatureStatus(status AdoptionStatus) (CreatureStatus, error) {
	switch status {
	case AdoptionPending:
		return CreatureAdoptionPending, nil
	case AdoptionApproved:
		return CreatureReserved, nil
	case AdoptionCompleted:
		return CreatureAdopted, nil
	case AdoptionCancelled, AdoptionReturned:
		return CreatureAvailable, nil
	default:
		return "", domainerrors.ErrUnsupportedAdoptionStatus
	}
}

// ApplyStatus moves the aggregate to newStatus, stamps LastUpdated and
// returns the creature status the caller must attempt to propagate to the
// creatures service. Any state may transition to any other; records are
// corrected in the real world, so no ordering is enforced.
func (a *Adoption) ApplyStatus(newStatus AdoptionStatus) (CreatureStatus, error) {
	required, err := RequiredCreatureStatus(newStatus)
	if err != nil {
		return "", err
	}

	a.AdoptionStatus = newStatus
	a.LastUpdated = time.Now()

	return required, nil
}

// ValidateDeletion rejects deletion of a COMPLETED adoption. Such a record
// must first be moved to CANCELLED or RETURNED.
func (a *Adoption) ValidateDeletion() error {
	if a.AdoptionStatus == AdoptionCompleted {
		return domainerrors.ErrCompletedAdoptionDeletion
	}

	return nil
}

// ValidateCustomerLimit rejects a new adoption when the customer already
// holds max completed adoptions. Pure and stateless; the caller supplies the
// count.
func ValidateCustomerLimit(completedCount, max int) error {
	if completedCount >= max {
		return domainerrors.ErrAdoptionLimitExceeded
	}

	return nil
}

// AdoptableCreatureStatus reports whether a creature in the given remote
// status may be the target of a new adoption.
func AdoptableCreatureStatus(status CreatureStatus) bool {
	return status == CreatureAvailable || status == CreatureReserved
}
