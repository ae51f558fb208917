package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/core/view"
)

// ModalHandler is the single entry point for every credential/creation form.
type ModalHandler struct{}

func NewModalHandler() *ModalHandler {
	return &ModalHandler{}
}

// Open resolves the form descriptor for a modal kind. Unknown kinds fail
// loudly with a configuration error.
//
// @Summary      Get a modal form descriptor
// @Tags         modals
// @Produce      json
// @Param        kind  path      string  true  "Form kind"  Enums(addDoctor, patientLogin, patientSignup, adminLogin, doctorLogin)
// @Success      200   {object}  view.ModalState
// @Failure      500   {object}  map[string]string
// @Router       /portal/modals/{kind} [get]
func (h *ModalHandler) Open(c echo.Context) error {
	state, err := view.OpenModal(view.FormKind(c.Param("kind")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

// Close returns the closed modal state. Idempotent regardless of which form,
// if any, was open.
//
// @Summary      Close the modal
// @Tags         modals
// @Produce      json
// @Success      200  {object}  view.ModalState
// @Router       /portal/modals/close [post]
func (h *ModalHandler) Close(c echo.Context) error {
	return c.JSON(http.StatusOK, view.CloseModal())
}
