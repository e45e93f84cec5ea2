package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/domain"
	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

// RegisterBookings wires the booking routes. Submission is the public
// booking form; listing and status changes belong to the back office.
func RegisterBookings(e *echo.Echo, auth *service.AuthService, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	e.POST("/api/bookings", handler.submit)

	admin := RequireAdmin(auth)
	e.GET("/api/bookings", handler.list, admin)
	e.GET("/api/bookings/:id", handler.get, admin)
	e.PUT("/api/bookings/:id/status", handler.updateStatus, admin)
}

func (h *BookingHandler) submit(c echo.Context) error {
	var sub domain.BookingSubmission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	booking, err := h.bookings.Submit(c.Request().Context(), sub)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) list(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	booking, err := h.bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) updateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid booking id"))
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	booking, err := h.bookings.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrBookingValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		c.Logger().Errorf("booking handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
