package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// BookingHandler drives the patient booking workflow over two requests:
// Start returns the overlay, Confirm replays the workflow and submits. The
// replay keeps patient data scoped to a single workflow invocation.
type BookingHandler struct {
	workflows ports.BookingWorkflowFactory
}

func NewBookingHandler(workflows ports.BookingWorkflowFactory) *BookingHandler {
	return &BookingHandler{workflows: workflows}
}

// doctorPayload is the doctor snapshot the card handed to the browser.
type doctorPayload struct {
	ID             int64    `json:"id" validate:"required"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Specialty      string   `json:"specialty"`
	AvailableTimes []string `json:"availableTimes"`
}

type startBookingRequest struct {
	Doctor doctorPayload `json:"doctor" validate:"required"`
}

type confirmBookingRequest struct {
	Doctor doctorPayload `json:"doctor" validate:"required"`
	Slot   string        `json:"slot"   validate:"required"`
	Date   string        `json:"date"   validate:"required"`
}

type confirmBookingResponse struct {
	Booked  bool   `json:"booked"`
	Message string `json:"message"`
}

func (p doctorPayload) toDomain() domain.Doctor {
	return domain.Doctor{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Specialty:      p.Specialty,
		AvailableTimes: p.AvailableTimes,
	}
}

// Start opens the booking overlay for a doctor.
//
// @Summary      Start a booking and get the overlay data
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      startBookingRequest  true  "Chosen doctor"
// @Success      200   {object}  ports.BookingOverlay
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/bookings [post]
func (h *BookingHandler) Start(c echo.Context) error {
	var req startBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, token, _ := ctxSession(c)
	overlay, err := h.workflows().Start(c.Request().Context(), req.Doctor.toDomain(), token)
	if err != nil {
		countBookingFailure(err)
		return err
	}
	return c.JSON(http.StatusOK, overlay)
}

// Confirm submits the chosen slot. The workflow is replayed from scratch so
// the auth check and patient fetch are as fresh as the submission itself.
//
// @Summary      Confirm a booking slot
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      confirmBookingRequest  true  "Chosen doctor, slot and date"
// @Success      200   {object}  confirmBookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/bookings/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	var req confirmBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	_, token, _ := ctxSession(c)

	workflow := h.workflows()
	if _, err := workflow.Start(ctx, req.Doctor.toDomain(), token); err != nil {
		countBookingFailure(err)
		return err
	}
	msg, err := workflow.Submit(ctx, req.Slot, req.Date)
	if err != nil {
		metrics.BookingsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.BookingsTotal.WithLabelValues("submitted").Inc()
	return c.JSON(http.StatusOK, confirmBookingResponse{Booked: true, Message: msg})
}

func countBookingFailure(err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		metrics.BookingsTotal.WithLabelValues("not_authenticated").Inc()
	case errors.Is(err, domain.ErrProfileFetch):
		metrics.BookingsTotal.WithLabelValues("profile_fetch_failed").Inc()
	default:
		metrics.BookingsTotal.WithLabelValues("rejected").Inc()
	}
}
