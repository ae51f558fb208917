package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
	"github.com/smartclinic/portal/internal/core/view"
)

// DirectoryHandler renders the doctor directory as role-aware cards and
// exposes the admin mutations.
type DirectoryHandler struct {
	directory ports.DirectoryService
	admin     ports.AdminDirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService, admin ports.AdminDirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, admin: admin}
}

type directoryResponse struct {
	Cards []view.DoctorCard `json:"cards"`
	Count int               `json:"count"`
	// Message is set when the result set is empty.
	Message string `json:"message,omitempty"`
}

type createDoctorResponse struct {
	Message string            `json:"message"`
	Cards   []view.DoctorCard `json:"cards"`
}

// List renders the directory, optionally filtered. The role is read fresh
// from the live session on every render, so cards always carry the action
// set of the current role.
//
// @Summary      Browse or filter the doctor directory
// @Tags         doctors
// @Produce      json
// @Param        name       query     string  false  "Doctor name filter"
// @Param        time       query     string  false  "Availability filter"
// @Param        specialty  query     string  false  "Specialty filter"
// @Success      200        {object}  directoryResponse
// @Success      204        "Superseded by a newer query"
// @Failure      502        {object}  map[string]string
// @Router       /portal/doctors [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	criteria := domain.FilterCriteria{
		Name:      c.QueryParam("name"),
		Time:      c.QueryParam("time"),
		Specialty: c.QueryParam("specialty"),
	}

	doctors, err := h.directory.Filter(c.Request().Context(), criteria)
	if err != nil {
		if errors.Is(err, domain.ErrSuperseded) {
			metrics.StaleQueriesDiscardedTotal.WithLabelValues("directory").Inc()
		}
		return err
	}

	role, _, _ := ctxSession(c)
	resp := directoryResponse{Cards: view.BuildCards(doctors, role), Count: len(doctors)}
	if len(doctors) == 0 {
		resp.Message = "No doctors found with the given filters."
	}
	return c.JSON(http.StatusOK, resp)
}

// Create adds a doctor and returns the fully reloaded directory so the view
// reflects server-assigned identifiers.
//
// @Summary      Add a doctor (admin)
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        body  body      domain.DoctorDraft  true  "Doctor draft"
// @Success      201   {object}  createDoctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/doctors [post]
func (h *DirectoryHandler) Create(c echo.Context) error {
	var draft domain.DoctorDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, token, _ := ctxSession(c)
	ctx := c.Request().Context()

	msg, err := h.admin.Create(ctx, draft, token)
	if err != nil {
		return err
	}

	doctors, err := h.directory.ListAll(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createDoctorResponse{
		Message: msg,
		Cards:   view.BuildCards(doctors, role),
	})
}

// Delete removes a doctor. A backend rejection propagates as an error and
// the client keeps the card; only a confirmed delete removes it.
//
// @Summary      Delete a doctor (admin)
// @Tags         doctors
// @Produce      json
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /portal/doctors/{id} [delete]
func (h *DirectoryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}

	_, token, _ := ctxSession(c)
	if err := h.admin.Delete(c.Request().Context(), id, token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
