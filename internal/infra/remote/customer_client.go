package remote

import (
	"context"
	"log/slog"

	"adoptions/config"
	"adoptions/internal/domain/service"
)

type customerClient struct {
	rest *restClient
}

// NewCustomerClient creates the HTTP client for the customers service.
func NewCustomerClient(cfg *config.Config, logger *slog.Logger) service.CustomerClient {
	return &customerClient{
		rest: newRESTClient("customer", cfg.Services.Customers, logger),
	}
}

// GetByID retrieves a customer by its public customer ID.
func (c *customerClient) GetByID(ctx context.Context, customerID string) (*service.CustomerRecord, error) {
	var record service.CustomerRecord
	if err := c.rest.getJSON(ctx, "/api/v1/customers/"+customerID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
