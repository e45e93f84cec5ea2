package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type TourHandler struct {
	tours *service.TourService
}

// RegisterTours wires the tour catalog routes. Reads are public; every
// mutation needs an admin token.
func RegisterTours(e *echo.Echo, auth *service.AuthService, tours *service.TourService) {
	handler := &TourHandler{tours: tours}

	e.GET("/api/tours", handler.list)
	e.GET("/api/tours/:ref", handler.get)

	admin := RequireAdmin(auth)
	e.POST("/api/tours", handler.create, admin)
	e.PUT("/api/tours/:id", handler.update, admin)
	e.DELETE("/api/tours/:id", handler.remove, admin)
}

func (h *TourHandler) list(c echo.Context) error {
	includeInactive, _ := strconv.ParseBool(c.QueryParam("include_inactive"))
	tours, err := h.tours.List(c.Request().Context(), includeInactive)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, tours)
}

// get resolves :ref as a UUID first and falls back to slug lookup, so both
// /api/tours/<id> and /api/tours/harihar-fort-trek work.
func (h *TourHandler) get(c echo.Context) error {
	ref := c.Param("ref")

	var tour *domain.Tour
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		tour, err = h.tours.GetByID(c.Request().Context(), id)
	} else {
		tour, err = h.tours.GetBySlug(c.Request().Context(), ref)
	}
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) create(c echo.Context) error {
	var fields domain.TourFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	tour, err := h.tours.Create(c.Request().Context(), fields)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, tour)
}

func (h *TourHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid tour id"))
	}
	var fields domain.TourFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	tour, err := h.tours.Update(c.Request().Context(), id, fields)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid tour id"))
	}
	if err := h.tours.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("tour deleted"))
}

func (h *TourHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTourNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrSlugTaken):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrTourValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		c.Logger().Errorf("tour handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
