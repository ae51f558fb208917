package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
	"github.com/smartclinic/portal/internal/core/view"
)

// AppointmentHandler renders the doctor board and handles appointment edits.
type AppointmentHandler struct {
	appointments ports.AppointmentService
}

func NewAppointmentHandler(appointments ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type updateAppointmentRequest struct {
	ID       int64  `json:"id"       validate:"required"`
	DoctorID int64  `json:"doctorId" validate:"required"`
	Date     string `json:"date"     validate:"required"`
	Time     string `json:"time"     validate:"required"`
}

type updateAppointmentResponse struct {
	Message string `json:"message"`
}

// Board renders the appointment table for a date and optional patient name.
// Every change fully replaces the row set. A zero-result day renders the
// informational row; a failed fetch renders the error row instead.
//
// @Summary      Doctor's appointment board
// @Tags         appointments
// @Produce      json
// @Param        date         query     string  false  "Selected date (YYYY-MM-DD), defaults to today"
// @Param        patientName  query     string  false  "Patient name filter"
// @Success      200          {object}  view.Board
// @Success      204          "Superseded by a newer query"
// @Failure      401          {object}  map[string]string
// @Failure      502          {object}  view.Board
// @Router       /portal/appointments [get]
func (h *AppointmentHandler) Board(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	patientName := c.QueryParam("patientName")

	_, token, _ := ctxSession(c)
	appts, err := h.appointments.ListForDoctor(c.Request().Context(), ports.BoardQueryInput{
		Date:        date,
		PatientName: patientName,
		Token:       token,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSuperseded) {
			metrics.StaleQueriesDiscardedTotal.WithLabelValues("board").Inc()
			return err
		}
		if errors.Is(err, domain.ErrFetchFailure) {
			// The board surfaces fetch failures as its own error row.
			return c.JSON(http.StatusBadGateway, view.BuildErrorBoard(date, patientName))
		}
		return err
	}

	return c.JSON(http.StatusOK, view.BuildBoard(date, patientName, appts))
}

// Update reschedules an existing appointment.
//
// @Summary      Update an appointment (patient)
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      updateAppointmentRequest  true  "Appointment changes"
// @Success      200   {object}  updateAppointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/appointments [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, token, _ := ctxSession(c)
	msg, err := h.appointments.Update(c.Request().Context(), domain.Appointment{
		ID:       req.ID,
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
	}, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateAppointmentResponse{Message: msg})
}
