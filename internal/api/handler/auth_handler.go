package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/api/middleware"
	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// AuthHandler drives login, signup and logout against the clinic backend and
// mutates the session only on server-confirmed success.
type AuthHandler struct {
	clinic   ports.AuthClient
	sessions ports.SessionContext
}

func NewAuthHandler(clinic ports.AuthClient, sessions ports.SessionContext) *AuthHandler {
	return &AuthHandler{clinic: clinic, sessions: sessions}
}

type loginRequest struct {
	// Username is used by the admin form; Email by doctor and patient forms.
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

type signupResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// dashboards maps each confirmed role to its landing page. The pages are an
// external collaborator; the portal only needs their names.
var dashboards = map[domain.Role]string{
	domain.RoleAdmin:         "/pages/adminDashboard.html",
	domain.RoleDoctor:        "/pages/doctorDashboard.html",
	domain.RoleLoggedPatient: "/pages/loggedPatientDashboard.html",
}

// Login authenticates one of the three roles against the clinic backend.
//
// @Summary      Log in as admin, doctor or patient
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string        true  "Login role"  Enums(admin, doctor, patient)
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/login/{role} [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	var (
		token string
		role  domain.Role
		err   error
	)
	switch c.Param("role") {
	case "admin":
		if req.Username == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "username is required")
		}
		token, err = h.clinic.AdminLogin(ctx, req.Username, req.Password)
		role = domain.RoleAdmin
	case "doctor":
		if req.Email == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "email is required")
		}
		token, err = h.clinic.DoctorLogin(ctx, req.Email, req.Password)
		role = domain.RoleDoctor
	case "patient":
		if req.Email == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "email is required")
		}
		token, err = h.clinic.PatientLogin(ctx, req.Email, req.Password)
		role = domain.RoleLoggedPatient
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown login role")
	}
	if err != nil {
		return err
	}

	id, err := h.sessions.Establish(ctx, token, role)
	if err != nil {
		return err
	}
	setSessionCookie(c, id)
	metrics.SessionsEstablishedTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusOK, loginResponse{Role: string(role), Redirect: dashboards[role]})
}

// Signup registers a new patient. Success does not log the patient in; they
// proceed through the login form like the original flow.
//
// @Summary      Register a new patient
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.PatientSignup  true  "Signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /portal/signup/patient [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req domain.PatientSignup
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.clinic.PatientSignup(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Success:  true,
		Message:  msg,
		Redirect: "/pages/patientDashboard.html",
	})
}

// SelectRole records the pre-login role choice from the landing page. Only
// the patient choice changes portal behavior (doctor cards switch to the
// Book Now prompt); admin and doctor go straight to their login forms, so
// their choice resets the cookie.
//
// @Summary      Record the pre-login role choice
// @Tags         auth
// @Produce      json
// @Param        role  path      string  true  "Chosen role"  Enums(admin, doctor, patient)
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /portal/role/{role} [post]
func (h *AuthHandler) SelectRole(c echo.Context) error {
	choice := c.Param("role")
	switch choice {
	case "patient":
		c.SetCookie(&http.Cookie{
			Name:     middleware.RoleCookie,
			Value:    choice,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	case "admin", "doctor":
		middleware.ExpireRoleCookie(c)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role choice")
	}
	return c.JSON(http.StatusOK, map[string]string{"role": choice})
}

// Logout clears the session and the pre-login role choice. Idempotent:
// logging out twice is fine.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /portal/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, _, sessionID := ctxSession(c)
	if err := h.sessions.Clear(c.Request().Context(), sessionID); err != nil {
		return err
	}
	middleware.ExpireSessionCookie(c)
	middleware.ExpireRoleCookie(c)
	metrics.SessionsClearedTotal.Inc()

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func setSessionCookie(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
