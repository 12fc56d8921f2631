package entity

import (
	"strings"
	"testing"
	"time"

	domainerrors "adoptions/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredCreatureStatus_FixedMapping(t *testing.T) {
	tests := []struct {
		status AdoptionStatus
		want   CreatureStatus
	}{
		{AdoptionPending, CreatureAdoptionPending},
		{AdoptionApproved, CreatureReserved},
		{AdoptionCompleted, CreatureAdopted},
		{AdoptionCancelled, CreatureAvailable},
		{AdoptionReturned, CreatureAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := RequiredCreatureStatus(tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredCreatureStatus_UnknownStatus(t *testing.T) {
	_, err := RequiredCreatureStatus(AdoptionStatus("SHIPPED"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedAdoptionStatus)
}

func TestApplyStatus_MutatesAndReturnsRequiredStatus(t *testing.T) {
	adoption := &Adoption{AdoptionStatus: AdoptionPending}
	before := time.Now()

	required, err := adoption.ApplyStatus(AdoptionApproved)
	require.NoError(t, err)

	assert.Equal(t, CreatureReserved, required)
	assert.Equal(t, AdoptionApproved, adoption.AdoptionStatus)
	assert.False(t, adoption.LastUpdated.Before(before))
}

func TestApplyStatus_InvalidStatusLeavesAggregateUntouched(t *testing.T) {
	adoption := &Adoption{AdoptionStatus: AdoptionPending}

	_, err := adoption.ApplyStatus(AdoptionStatus("INVALID_STATUS"))
	require.Error(t, err)
	assert.Equal(t, AdoptionPending, adoption.AdoptionStatus)
	assert.True(t, adoption.LastUpdated.IsZero())
}

func TestApplyStatus_Idempotent(t *testing.T) {
	adoption := &Adoption{AdoptionStatus: AdoptionPending}

	first, err := adoption.ApplyStatus(AdoptionPending)
	require.NoError(t, err)
	second, err := adoption.ApplyStatus(AdoptionPending)
	require.NoError(t, err)

	assert.Equal(t, CreatureAdoptionPending, first)
	assert.Equal(t, first, second)
	assert.Equal(t, AdoptionPending, adoption.AdoptionStatus)
}

func TestValidateDeletion(t *testing.T) {
	for _, status := range []AdoptionStatus{AdoptionPending, AdoptionApproved, AdoptionCancelled, AdoptionReturned} {
		adoption := &Adoption{AdoptionStatus: status}
		assert.NoError(t, adoption.ValidateDeletion(), "status %s should allow deletion", status)
	}

	completed := &Adoption{AdoptionStatus: AdoptionCompleted}
	err := completed.ValidateDeletion()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompletedAdoptionDeletion)
}

func TestValidateCustomerLimit(t *testing.T) {
	assert.NoError(t, ValidateCustomerLimit(0, 2))
	assert.NoError(t, ValidateCustomerLimit(1, 2))

	for _, count := range []int{2, 3, 10} {
		err := ValidateCustomerLimit(count, 2)
		require.Error(t, err, "count %d should exceed the limit", count)
		assert.ErrorIs(t, err, domainerrors.ErrAdoptionLimitExceeded)
	}
}

func TestNewAdoptionIdentifier(t *testing.T) {
	withCode := NewAdoptionIdentifier("ADO-CUSTOM1")
	assert.Len(t, withCode.AdoptionID, 36)
	assert.Equal(t, "ADO-CUSTOM1", withCode.AdoptionCode)

	generated := NewAdoptionIdentifier("")
	assert.Len(t, generated.AdoptionID, 36)
	assert.True(t, strings.HasPrefix(generated.AdoptionCode, "ADO-"))
	assert.Len(t, generated.AdoptionCode, len("ADO-")+8)
	assert.Equal(t, strings.ToUpper(generated.AdoptionCode), generated.AdoptionCode)

	assert.NotEqual(t, generated.AdoptionID, NewAdoptionIdentifier("").AdoptionID)
}

func TestParseAdoptionStatus(t *testing.T) {
	got, ok := ParseAdoptionStatus("pending")
	require.True(t, ok)
	assert.Equal(t, AdoptionPending, got)

	_, ok = ParseAdoptionStatus("INVALID_STATUS")
	assert.False(t, ok)
}

func TestAdoptableCreatureStatus(t *testing.T) {
	assert.True(t, AdoptableCreatureStatus(CreatureAvailable))
	assert.True(t, AdoptableCreatureStatus(CreatureReserved))
	assert.False(t, AdoptableCreatureStatus(CreatureAdopted))
	assert.False(t, AdoptableCreatureStatus(CreatureAdoptionPending))
}
