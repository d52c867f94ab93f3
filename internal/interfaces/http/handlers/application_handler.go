package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/interfaces/http/middleware"
	"scheme-sense.backend/internal/interfaces/http/response"
	"scheme-sense.backend/internal/usecases"
	"scheme-sense.backend/pkg/utils"
)

// ApplicationHandler handles the scheme application ledger endpoints
type ApplicationHandler struct {
	applicationUsecase *usecases.ApplicationUsecase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
	}
}

// Apply records a new application for the authenticated citizen
// POST /api/v1/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUsecase.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Scheme not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, app)
}

// ListApplications returns the citizen's applications, most recent first
// GET /api/v1/applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	limit, offset := utils.ParsePagination(c.Query("limit"), c.Query("offset"))

	apps, total, err := h.applicationUsecase.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	})
}

// UpdateStatus performs the administrative decision on an application
// PATCH /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Application not found"))
		return
	}

	var input entities.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUsecase.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, app)
}
