// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	domainerrors "adoptions/internal/domain/errors"
	"adoptions/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const adoptionIDLength = 36

// AdoptionHandler holds dependencies for adoption-related handlers.
type AdoptionHandler struct {
	uc     usecase.AdoptionUsecase
	logger *slog.Logger
}

// NewAdoptionHandler is the constructor for AdoptionHandler, injected by Fx.
func NewAdoptionHandler(uc usecase.AdoptionUsecase, logger *slog.Logger) *AdoptionHandler {
	return &AdoptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all adoptions matching the query parameters.
func (h *AdoptionHandler) List(c echo.Context) error {
	filter := usecase.ListFilter{
		CustomerID:     c.QueryParam("customerId"),
		CreatureID:     c.QueryParam("creatureId"),
		ProfileStatus:  c.QueryParam("profileStatus"),
		AdoptionStatus: c.QueryParam("adoptionStatus"),
	}

	details, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, details)
}

// GetByID returns one adoption by its public adoption ID.
func (h *AdoptionHandler) GetByID(c echo.Context) error {
	adoptionID, err := pathAdoptionID(c)
	if err != nil {
		return err
	}

	details, err := h.uc.GetByID(c.Request().Context(), adoptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, details)
}

// Create registers a new adoption.
func (h *AdoptionHandler) Create(c echo.Context) error {
	input := new(usecase.AdoptionInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessagef("Invalid request body: %s", err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	details, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, details)
}

// Update replaces all mutable fields of an existing adoption.
func (h *AdoptionHandler) Update(c echo.Context) error {
	adoptionID, err := pathAdoptionID(c)
	if err != nil {
		return err
	}

	input := new(usecase.AdoptionInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessagef("Invalid request body: %s", err.Error())
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	details, err := h.uc.Update(c.Request().Context(), input, adoptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, details)
}

// UpdateStatus runs a status-only transition.
func (h *AdoptionHandler) UpdateStatus(c echo.Context) error {
	adoptionID, err := pathAdoptionID(c)
	if err != nil {
		return err
	}

	details, err := h.uc.UpdateStatus(c.Request().Context(), adoptionID, c.Param("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, details)
}

// Delete removes an adoption.
func (h *AdoptionHandler) Delete(c echo.Context) error {
	adoptionID, err := pathAdoptionID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), adoptionID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// pathAdoptionID extracts the adoption ID path parameter, rejecting anything
// that is not UUID-shaped before the usecase is reached.
func pathAdoptionID(c echo.Context) (string, error) {
	adoptionID := c.Param("adoptionId")
	if len(adoptionID) != adoptionIDLength {
		return "", domainerrors.ErrInvalidAdoptionID.WithMessagef("Invalid adoptionId provided: %s", adoptionID)
	}

	return adoptionID, nil
}
