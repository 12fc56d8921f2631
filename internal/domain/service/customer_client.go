// Package service defines the interfaces the orchestration layer depends on
// for reaching the other adoption subdomains.
package service

import "context"

// CustomerRecord is the representation of a customer as returned by the
// customers service. Only firstName/lastName feed response enrichment; the
// rest is passed through untouched.
type CustomerRecord struct {
	CustomerID              string `json:"customerId"`
	FirstName               string `json:"firstName"`
	LastName                string `json:"lastName"`
	EmailAddress            string `json:"emailAddress"`
	ContactMethodPreference string `json:"contactMethodPreference"`
	StreetAddress           string `json:"streetAddress"`
	City                    string `json:"city"`
	Province                string `json:"province"`
	Country                 string `json:"country"`
	PostalCode              string `json:"postalCode"`
}

// CustomerClient reads customers from the customers service. A remote 404
// translates to a NotFound failure, a 422 to InvalidInput; anything else is
// surfaced verbatim as a remote-call failure.
type CustomerClient interface {
	// GetByID retrieves a customer by its public customer ID.
	GetByID(ctx context.Context, customerID string) (*CustomerRecord, error)
}
