package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/internal/interfaces/http/middleware"
	"scheme-sense.backend/internal/interfaces/http/response"
	"scheme-sense.backend/internal/usecases"
)

// AdvisoryHandler handles AI advice and chat conversation endpoints
type AdvisoryHandler struct {
	advisoryUsecase *usecases.AdvisoryUsecase
	authUsecase     *usecases.AuthUsecase
	catalogUsecase  *usecases.CatalogUsecase
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(
	advisoryUsecase *usecases.AdvisoryUsecase,
	authUsecase *usecases.AuthUsecase,
	catalogUsecase *usecases.CatalogUsecase,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryUsecase: advisoryUsecase,
		authUsecase:     authUsecase,
		catalogUsecase:  catalogUsecase,
	}
}

// GetAdvice returns a short AI verdict for one scheme against the citizen's
// profile. Always 200: upstream failures come back as the fallback text.
// POST /api/v1/advisory/schemes/:id/advice
func (h *AdvisoryHandler) GetAdvice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.authUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	scheme, err := h.catalogUsecase.GetScheme(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Scheme not found"))
			return
		}
		response.Error(c, err)
		return
	}

	advice := h.advisoryUsecase.GetAdvice(c.Request.Context(), profile, scheme)

	response.Success(c, http.StatusOK, gin.H{
		"schemeId": scheme.ID,
		"advice":   advice,
	})
}

// CreateConversation opens a chat session owned by the caller
// POST /api/v1/advisory/conversations
func (h *AdvisoryHandler) CreateConversation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	// A missing profile only drops the personalization context.
	profile, err := h.authUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		profile = nil
	}

	conversationID, err := h.advisoryUsecase.CreateConversation(c.Request.Context(), profile)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"conversationId": conversationID,
	})
}

// SendMessage streams the assistant's reply over server-sent events
// POST /api/v1/advisory/conversations/:id/messages
func (h *AdvisoryHandler) SendMessage(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Message is required"))
		return
	}

	// The event-stream headers are written only once there is something to
	// stream, so an unresolved conversation still gets a plain JSON error.
	streaming := false
	beginStream := func() {
		if streaming {
			return
		}
		streaming = true
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
	}

	err := h.advisoryUsecase.SendMessage(c.Request.Context(), c.Param("id"), input.Message, func(text string) error {
		beginStream()
		c.SSEvent("chunk", gin.H{"text": text})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !streaming && errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Conversation not found"))
			return
		}
		// Chunks already delivered stand; close with the fallback note.
		beginStream()
		c.SSEvent("error", gin.H{"text": usecases.FallbackUnavailable})
		c.Writer.Flush()
		return
	}

	beginStream()
	c.SSEvent("done", gin.H{})
	c.Writer.Flush()
}

// CloseConversation ends a chat session
// DELETE /api/v1/advisory/conversations/:id
func (h *AdvisoryHandler) CloseConversation(c *gin.Context) {
	if err := h.advisoryUsecase.CloseConversation(c.Param("id")); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Conversation not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"closed": true,
	})
}
