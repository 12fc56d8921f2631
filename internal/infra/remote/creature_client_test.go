package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adoptions/config"
	"adoptions/internal/domain/entity"
	domainerrors "adoptions/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func creatureClientFor(serverURL string) *creatureClient {
	cfg := &config.Config{}
	cfg.Services.Creatures = config.ServiceClientConfig{BaseURL: serverURL, Timeout: time.Second}

	return NewCreatureClient(cfg, testLogger()).(*creatureClient)
}

func TestCreatureClient_GetByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/creatures/c-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"creatureId": "c-1",
			"name":       "Ember",
			"species":    "Phoenix",
			"status":     "AVAILABLE",
			"level":      4,
		})
	}))
	defer server.Close()

	record, err := creatureClientFor(server.URL).GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Ember", record.Name)
	assert.Equal(t, "Phoenix", record.Species)
	assert.Equal(t, "AVAILABLE", record.Status)
	assert.Equal(t, 4, record.Level)
}

func TestCreatureClient_GetByID_NotFoundCarriesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(domainerrors.NewHTTPErrorInfo(r.URL.Path, "Unknown creatureId provided: c-404"))
	}))
	defer server.Close()

	_, err := creatureClientFor(server.URL).GetByID(context.Background(), "c-404")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "RESOURCE_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Unknown creatureId provided: c-404", appErr.Message())
}

func TestCreatureClient_GetByID_UnprocessableEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(domainerrors.NewHTTPErrorInfo(r.URL.Path, "Invalid creatureId provided: short"))
	}))
	defer server.Close()

	_, err := creatureClientFor(server.URL).GetByID(context.Background(), "short")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
	assert.Equal(t, "Invalid creatureId provided: short", appErr.Message())
}

func TestCreatureClient_GetByID_MalformedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := creatureClientFor(server.URL).GetByID(context.Background(), "c-404")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.NotEmpty(t, appErr.Message())
	assert.NotContains(t, appErr.Message(), "not json")
}

func TestCreatureClient_GetByID_UnexpectedStatusIsPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer server.Close()

	_, err := creatureClientFor(server.URL).GetByID(context.Background(), "c-1")
	require.Error(t, err)

	var remoteErr *domainerrors.RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.HTTPCode())
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.RemoteStatus())
	assert.Equal(t, `{"error":"maintenance"}`, remoteErr.Details())
}

func TestCreatureClient_GetByID_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	_, err := creatureClientFor(server.URL).GetByID(context.Background(), "c-1")
	require.Error(t, err)

	var remoteErr *domainerrors.RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.HTTPCode())
	assert.Zero(t, remoteErr.RemoteStatus())
}

func TestCreatureClient_UpdateStatus_ReadModifyWrite(t *testing.T) {
	var putBody creatureUpdateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/creatures/c-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"creatureId":   "c-1",
				"name":         "Willow",
				"species":      "Griffin",
				"type":         "FLYING",
				"rarity":       "RARE",
				"level":        7,
				"age":          3,
				"health":       90,
				"experience":   1200,
				"status":       "AVAILABLE",
				"strength":     60,
				"intelligence": 80,
				"agility":      75,
				"temperament":  "CALM",
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"creatureId": "c-1",
				"name":       putBody.Name,
				"status":     putBody.Status,
			})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	record, err := creatureClientFor(server.URL).UpdateStatus(context.Background(), "c-1", entity.CreatureReserved)
	require.NoError(t, err)
	assert.Equal(t, "RESERVED", record.Status)

	assert.Equal(t, "Willow", putBody.Name)
	assert.Equal(t, "Griffin", putBody.Species)
	assert.Equal(t, "FLYING", putBody.Type)
	assert.Equal(t, 7, putBody.Level)
	assert.Equal(t, 90, putBody.Health)
	assert.Equal(t, "CALM", putBody.Temperament)
	assert.Equal(t, "RESERVED", putBody.Status)
}

func TestCreatureClient_UpdateStatus_ReadFailureShortCircuits(t *testing.T) {
	var putCalled bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			putCalled = true
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(domainerrors.NewHTTPErrorInfo(r.URL.Path, "Unknown creatureId provided: c-404"))
	}))
	defer server.Close()

	_, err := creatureClientFor(server.URL).UpdateStatus(context.Background(), "c-404", entity.CreatureAvailable)
	require.Error(t, err)
	assert.False(t, putCalled)
}
