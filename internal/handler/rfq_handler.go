package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rfqdesk/internal/auth"
	apperrors "rfqdesk/internal/errors"
	"rfqdesk/internal/middleware"
	"rfqdesk/internal/model"
	"rfqdesk/internal/service"
)

const deadlineLayout = "2006-01-02"

// RFQHandler handles RFQ lifecycle endpoints.
type RFQHandler struct {
	rfqService service.RFQService
	jwtService *auth.JWTService
}

// NewRFQHandler creates a new RFQ handler. The JWT service lets the public
// submission endpoint link an RFQ to the submitter when a token is present.
func NewRFQHandler(rfqService service.RFQService, jwtService *auth.JWTService) *RFQHandler {
	return &RFQHandler{
		rfqService: rfqService,
		jwtService: jwtService,
	}
}

// SubmitRFQRequest represents an RFQ submission.
type SubmitRFQRequest struct {
	CompanyName        string           `json:"companyName" validate:"required"`
	Name               string           `json:"name" validate:"required"`
	Email              string           `json:"email" validate:"required,email"`
	PhoneNumber        string           `json:"phoneNumber" validate:"required"`
	ServiceRequired    string           `json:"serviceRequired" validate:"required"`
	ProjectDescription string           `json:"projectDescription" validate:"required"`
	File               string           `json:"file"`
	EstimatedBudget    *decimal.Decimal `json:"estimatedBudget"`
	Deadline           string           `json:"deadline" validate:"required"`
	AdditionalNotes    string           `json:"additionalNotes"`
}

// UpdateRFQStatusRequest represents an admin status/assignment update.
type UpdateRFQStatusRequest struct {
	ID         string `json:"id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=pending accepted rejected"`
	EmployeeID string `json:"employeeId"`
}

// Submit godoc
// @Summary Submit an RFQ
// @Tags rfqs
// @Accept json
// @Produce json
// @Param request body SubmitRFQRequest true "RFQ data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /submitRfq [post]
func (h *RFQHandler) Submit(c echo.Context) error {
	var req SubmitRFQRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.ValidationHTTPError(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	deadline, err := time.Parse(deadlineLayout, req.Deadline)
	if err != nil {
		httpErr := apperrors.NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_FAILED").
			WithDetails([]apperrors.FieldError{{Field: "Deadline", Message: "deadline must be a date in YYYY-MM-DD form"}})
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	rfq := &model.RFQ{
		CompanyName:        req.CompanyName,
		Name:               req.Name,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		ServiceRequired:    req.ServiceRequired,
		ProjectDescription: req.ProjectDescription,
		File:               req.File,
		EstimatedBudget:    req.EstimatedBudget,
		Deadline:           deadline,
		AdditionalNotes:    req.AdditionalNotes,
		SubmittedBy:        h.submitterID(c),
	}

	created, err := h.rfqService.Submit(c.Request().Context(), rfq)
	if err != nil {
		log.Printf("submit rfq: %v", err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "RFQ created successfully",
		"rfq":     created,
	})
}

// submitterID resolves the submitting account when the public submission
// carries a valid bearer token. Anonymous submissions stay unlinked and are
// later matched to the client by email.
func (h *RFQHandler) submitterID(c echo.Context) *uuid.UUID {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return nil
	}
	claims, err := h.jwtService.ValidateToken(header[len(prefix):])
	if err != nil {
		return nil
	}
	return &claims.UserID
}

// ListMine godoc
// @Summary List own RFQs
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RFQ
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /myRfqs [get]
func (h *RFQHandler) ListMine(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	rfqs, err := h.rfqService.ListForClient(c.Request().Context(), claims.UserID, claims.Email)
	if err != nil {
		log.Printf("list rfqs for %s: %v", claims.UserID, err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, rfqs)
}

// ListAll godoc
// @Summary List all RFQs
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RFQ
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /getAllRFQS [get]
func (h *RFQHandler) ListAll(c echo.Context) error {
	rfqs, err := h.rfqService.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("list all rfqs: %v", err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, rfqs)
}

// ListAssigned godoc
// @Summary List accepted RFQs assigned to the caller
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RFQ
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assigned [get]
func (h *RFQHandler) ListAssigned(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	rfqs, err := h.rfqService.ListAssigned(c.Request().Context(), claims.UserID)
	if err != nil {
		log.Printf("list assigned rfqs for %s: %v", claims.UserID, err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, rfqs)
}

// UpdateStatus godoc
// @Summary Update RFQ status and assignment
// @Tags rfqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateRFQStatusRequest true "Status update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /updateRFQStatus [patch]
func (h *RFQHandler) UpdateStatus(c echo.Context) error {
	var req UpdateRFQStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.ValidationHTTPError(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid RFQ id",
			Code:  "INVALID_ID",
		})
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		parsed, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "invalid employee id",
				Code:  "INVALID_ID",
			})
		}
		employeeID = &parsed
	}

	rfq, err := h.rfqService.UpdateStatus(c.Request().Context(), id, model.RFQStatus(req.Status), employeeID)
	if err != nil {
		if err != apperrors.ErrRFQNotFound && err != apperrors.ErrInvalidStatus {
			log.Printf("update rfq %s: %v", id, err)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("RFQ %s successfully", rfq.Status),
		"rfq":     rfq,
	})
}
