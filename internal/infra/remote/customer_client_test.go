package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adoptions/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerClient_GetByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/customers/cust-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"customerId":   "cust-1",
			"firstName":    "Mei",
			"lastName":     "Tanaka",
			"emailAddress": "mei@example.com",
		})
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Services.Customers = config.ServiceClientConfig{BaseURL: server.URL, Timeout: time.Second}

	record, err := NewCustomerClient(cfg, testLogger()).GetByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "Mei", record.FirstName)
	assert.Equal(t, "Tanaka", record.LastName)
	assert.Equal(t, "mei@example.com", record.EmailAddress)
}

func TestTrainingClient_GetByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/trainings/tr-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"trainingId": "tr-1",
			"name":       "Basic Obedience",
			"location":   "Toronto",
			"difficulty": "BEGINNER",
		})
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Services.Trainings = config.ServiceClientConfig{BaseURL: server.URL, Timeout: time.Second}

	record, err := NewTrainingClient(cfg, testLogger()).GetByID(context.Background(), "tr-1")
	require.NoError(t, err)
	assert.Equal(t, "Basic Obedience", record.Name)
	assert.Equal(t, "Toronto", record.Location)
}
