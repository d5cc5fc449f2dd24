package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rfqdesk/internal/errors"
	"rfqdesk/internal/middleware"
	"rfqdesk/internal/service"
)

// ActivityHandler serves the employee activity feed.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListMine godoc
// @Summary List the caller's recent activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) ListMine(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	activities, err := h.activityService.ListForEmployee(c.Request().Context(), claims.UserID)
	if err != nil {
		log.Printf("list activities for %s: %v", claims.UserID, err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, activities)
}
