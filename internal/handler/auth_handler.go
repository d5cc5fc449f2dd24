package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rfqdesk/internal/errors"
	"rfqdesk/internal/middleware"
	"rfqdesk/internal/model"
	"rfqdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents an account creation request.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName" validate:"required,min=3"`
	PhoneNo   string `json:"phoneNo" validate:"required,len=10,numeric"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin employee client"`
}

// SigninRequest represents a sign-in request. AccessID is required for the
// admin and employee roles; clients leave it empty.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin employee client"`
	AccessID string `json:"accessId"`
}

// SigninResponse represents a successful sign-in.
type SigninResponse struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.ValidationHTTPError(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	_, err := h.authService.SignUp(c.Request().Context(), req.FirstName, req.LastName, req.PhoneNo, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		if err != apperrors.ErrEmailTaken && err != apperrors.ErrPhoneTaken {
			log.Printf("signup: %v", err)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"success": true,
	})
}

// Signin godoc
// @Summary Authenticate and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} SigninResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.ValidationHTTPError(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password, model.Role(req.Role), req.AccessID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Printf("signin: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SigninResponse{
		Message: fmt.Sprintf("Welcome, %s!", user.FirstName),
		Success: true,
		Token:   token,
		User:    user,
	})
}

// Signout godoc
// @Summary Revoke the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok || claims.ExpiresAt == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if err := h.authService.SignOut(c.Request().Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		log.Printf("signout: %v", err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "signed out successfully",
	})
}
