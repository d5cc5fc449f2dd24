package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "rfqdesk/internal/errors"
	"rfqdesk/internal/middleware"
	"rfqdesk/internal/model"
	"rfqdesk/internal/service"
	"rfqdesk/internal/upload"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
	uploads     *upload.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, uploads *upload.Store) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploads:     uploads,
	}
}

// ClientListResponse represents a page of client accounts.
type ClientListResponse struct {
	Users []model.User `json:"users"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// GetProfile godoc
// @Summary Fetch own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		if err != apperrors.ErrUserNotFound {
			log.Printf("get profile %s: %v", claims.UserID, err)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Accepts JSON or multipart form data. Only the allow-listed
// @Description fields are applied; an optional image file is stored and
// @Description referenced from the record.
// @Tags users
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /updateuser [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	updates, imagePath, imageContentType, err := h.readProfileUpdates(c)
	if err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, updates, imagePath, imageContentType)
	if err != nil {
		if err != apperrors.ErrNoValidFields && err != apperrors.ErrUserNotFound {
			log.Printf("update profile %s: %v", claims.UserID, err)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "profile updated successfully",
		"user":    user,
	})
}

// readProfileUpdates extracts the field bag and an optional image upload from
// either a JSON body or a multipart form.
func (h *UserHandler) readProfileUpdates(c echo.Context) (updates map[string]interface{}, imagePath, imageContentType string, err error) {
	updates = map[string]interface{}{}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		form, formErr := c.MultipartForm()
		if formErr != nil {
			return nil, "", "", echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		for key, values := range form.Value {
			if len(values) > 0 {
				updates[key] = values[0]
			}
		}
		if fh, fileErr := c.FormFile("image"); fileErr == nil {
			imagePath, imageContentType, err = h.uploads.Save(fh)
			if err != nil {
				log.Printf("save profile image: %v", err)
				return nil, "", "", echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "error processing uploaded file",
					Code:  "UPLOAD_FAILED",
				})
			}
		}
		return updates, imagePath, imageContentType, nil
	}

	if bindErr := c.Bind(&updates); bindErr != nil {
		return nil, "", "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return updates, "", "", nil
}

// ListClients godoc
// @Summary Paginated client list
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} ClientListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /all [get]
func (h *UserHandler) ListClients(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	users, total, err := h.userService.ListClients(c.Request().Context(), page, limit)
	if err != nil {
		log.Printf("list clients: %v", err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ClientListResponse{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
