package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adoptions/internal/delivery/http/middleware"
	"adoptions/internal/delivery/http/validator"
	"adoptions/internal/domain/entity"
	domainerrors "adoptions/internal/domain/errors"
	mockUsecase "adoptions/internal/mocks/usecase"
	"adoptions/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAdoptionUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAdoptionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAdoptionHandler(uc, logger)
	e.GET("/api/v1/adoptions", h.List)
	e.POST("/api/v1/adoptions", h.Create)
	e.GET("/api/v1/adoptions/:adoptionId", h.GetByID)
	e.PUT("/api/v1/adoptions/:adoptionId", h.Update)
	e.PATCH("/api/v1/adoptions/:adoptionId/status/:status", h.UpdateStatus)
	e.DELETE("/api/v1/adoptions/:adoptionId", h.Delete)

	return e, uc
}

func performRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.HTTPErrorInfo {
	t.Helper()

	var info domainerrors.HTTPErrorInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	return info
}

func sampleDetails() *usecase.AdoptionDetails {
	return &usecase.AdoptionDetails{
		AdoptionID:     uuid.NewString(),
		AdoptionCode:   "ADO-ABCD1234",
		Summary:        "Family adoption",
		AdoptionStatus: entity.AdoptionPending,
		ProfileStatus:  entity.ProfileActive,
		CustomerID:     uuid.NewString(),
		CreatureID:     uuid.NewString(),
	}
}

func TestAdoptionHandler_List(t *testing.T) {
	e, uc := newTestServer(t)
	details := sampleDetails()

	uc.EXPECT().
		List(mock.Anything, usecase.ListFilter{CustomerID: details.CustomerID}).
		Return([]*usecase.AdoptionDetails{details}, nil)

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions?customerId="+details.CustomerID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*usecase.AdoptionDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, details.AdoptionID, got[0].AdoptionID)
}

func TestAdoptionHandler_List_InvalidFilter(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		List(mock.Anything, usecase.ListFilter{CustomerID: "bogus"}).
		Return(nil, domainerrors.ErrInvalidFilterID.WithMessagef("Invalid customerId provided: bogus"))

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions?customerId=bogus", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Equal(t, "/api/v1/adoptions", info.Path)
	assert.Equal(t, "Invalid customerId provided: bogus", info.Message)
	assert.False(t, info.Timestamp.IsZero())
}

func TestAdoptionHandler_GetByID(t *testing.T) {
	e, uc := newTestServer(t)
	details := sampleDetails()

	uc.EXPECT().
		GetByID(mock.Anything, details.AdoptionID).
		Return(details, nil)

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions/"+details.AdoptionID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.AdoptionDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, details.AdoptionCode, got.AdoptionCode)
}

func TestAdoptionHandler_GetByID_MalformedID(t *testing.T) {
	e, uc := newTestServer(t)

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions/not-a-uuid", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Equal(t, "Invalid adoptionId provided: not-a-uuid", info.Message)
	uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAdoptionHandler_GetByID_NotFound(t *testing.T) {
	e, uc := newTestServer(t)
	adoptionID := uuid.NewString()

	uc.EXPECT().
		GetByID(mock.Anything, adoptionID).
		Return(nil, domainerrors.ErrAdoptionNotFound.WithMessagef("Unknown adoptionId provided: %s", adoptionID))

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions/"+adoptionID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Contains(t, info.Message, adoptionID)
}

func TestAdoptionHandler_Create(t *testing.T) {
	e, uc := newTestServer(t)
	details := sampleDetails()
	customerID := uuid.NewString()
	creatureID := uuid.NewString()

	var received *usecase.AdoptionInput
	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.AdoptionInput")).
		Run(func(_ context.Context, input *usecase.AdoptionInput) {
			received = input
		}).
		Return(details, nil)

	body := `{"summary":"First adoption","customerId":"` + customerID + `","creatureId":"` + creatureID + `"}`
	rec := performRequest(e, http.MethodPost, "/api/v1/adoptions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, received)
	assert.Equal(t, customerID, received.CustomerID)
	assert.Equal(t, creatureID, received.CreatureID)
	assert.Equal(t, "First adoption", received.Summary)
}

func TestAdoptionHandler_Create_ValidationFailure(t *testing.T) {
	e, uc := newTestServer(t)

	body := `{"summary":"Missing references","customerId":"short"}`
	rec := performRequest(e, http.MethodPost, "/api/v1/adoptions", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Contains(t, info.Message, "Invalid request body")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdoptionHandler_Create_LimitExceeded(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.AdoptionInput")).
		Return(nil, domainerrors.ErrAdoptionLimitExceeded)

	body := `{"customerId":"` + uuid.NewString() + `","creatureId":"` + uuid.NewString() + `"}`
	rec := performRequest(e, http.MethodPost, "/api/v1/adoptions", body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Contains(t, info.Message, "maximum number of completed adoptions")
}

func TestAdoptionHandler_Update(t *testing.T) {
	e, uc := newTestServer(t)
	details := sampleDetails()

	uc.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.AdoptionInput"), details.AdoptionID).
		Return(details, nil)

	body := `{"summary":"Updated","customerId":"` + details.CustomerID + `","creatureId":"` + details.CreatureID + `"}`
	rec := performRequest(e, http.MethodPut, "/api/v1/adoptions/"+details.AdoptionID, body)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdoptionHandler_UpdateStatus(t *testing.T) {
	e, uc := newTestServer(t)
	details := sampleDetails()
	details.AdoptionStatus = entity.AdoptionApproved

	uc.EXPECT().
		UpdateStatus(mock.Anything, details.AdoptionID, "APPROVED").
		Return(details, nil)

	rec := performRequest(e, http.MethodPatch, "/api/v1/adoptions/"+details.AdoptionID+"/status/APPROVED", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.AdoptionDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entity.AdoptionApproved, got.AdoptionStatus)
}

func TestAdoptionHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	e, uc := newTestServer(t)
	adoptionID := uuid.NewString()

	uc.EXPECT().
		UpdateStatus(mock.Anything, adoptionID, "INVALID_STATUS").
		Return(nil, domainerrors.ErrInvalidAdoptionStatus.WithMessagef("Invalid adoption status: INVALID_STATUS"))

	rec := performRequest(e, http.MethodPatch, "/api/v1/adoptions/"+adoptionID+"/status/INVALID_STATUS", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Equal(t, "Invalid adoption status: INVALID_STATUS", info.Message)
}

func TestAdoptionHandler_Delete(t *testing.T) {
	e, uc := newTestServer(t)
	adoptionID := uuid.NewString()

	uc.EXPECT().
		Remove(mock.Anything, adoptionID).
		Return(nil)

	rec := performRequest(e, http.MethodDelete, "/api/v1/adoptions/"+adoptionID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAdoptionHandler_Delete_CompletedRejected(t *testing.T) {
	e, uc := newTestServer(t)
	adoptionID := uuid.NewString()

	uc.EXPECT().
		Remove(mock.Anything, adoptionID).
		Return(domainerrors.ErrCompletedAdoptionDeletion)

	rec := performRequest(e, http.MethodDelete, "/api/v1/adoptions/"+adoptionID, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Contains(t, info.Message, "Cannot delete a completed adoption")
}

func TestAdoptionHandler_RemoteFailureSurfacesBadGateway(t *testing.T) {
	e, uc := newTestServer(t)
	adoptionID := uuid.NewString()

	uc.EXPECT().
		GetByID(mock.Anything, adoptionID).
		Return(nil, domainerrors.NewRemoteCallError("creature", http.StatusInternalServerError, `{"message":"boom"}`, nil))

	rec := performRequest(e, http.MethodGet, "/api/v1/adoptions/"+adoptionID, "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	info := decodeErrorBody(t, rec)
	assert.Contains(t, info.Message, "creature service")
}
