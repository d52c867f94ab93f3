package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/domain/geo"
	"scheme-sense.backend/internal/interfaces/http/middleware"
	"scheme-sense.backend/internal/interfaces/http/response"
	"scheme-sense.backend/internal/usecases"
)

// SchemeHandler handles scheme catalog and location endpoints
type SchemeHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(catalogUsecase *usecases.CatalogUsecase) *SchemeHandler {
	return &SchemeHandler{
		catalogUsecase: catalogUsecase,
	}
}

// GetEligibleSchemes returns the schemes the authenticated citizen matches
// GET /api/v1/schemes/eligible
func (h *SchemeHandler) GetEligibleSchemes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	schemes, err := h.catalogUsecase.GetEligibleSchemes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"schemes": schemes,
		"count":   len(schemes),
	})
}

// GetScheme returns a single scheme by ID
// GET /api/v1/schemes/:id
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	scheme, err := h.catalogUsecase.GetScheme(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Scheme not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, scheme)
}

// GetDistricts lists the supported districts
// GET /api/v1/locations/districts
func (h *SchemeHandler) GetDistricts(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"districts": geo.Districts,
	})
}

// GetBlocks lists the blocks for one district
// GET /api/v1/locations/districts/:district/blocks
func (h *SchemeHandler) GetBlocks(c *gin.Context) {
	district := c.Param("district")
	blocks := geo.BlocksForDistrict(district)
	if blocks == nil {
		response.Error(c, domainerrors.NotFound("Unknown district: "+district))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"district": district,
		"blocks":   blocks,
	})
}
