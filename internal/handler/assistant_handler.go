package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/service"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/response"
)

// AssistantHandler exposes the conversational-assistant pass-through.
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat godoc
// @Summary Ask the assistant
// @Description Forwards the message to the assistant and returns the reply; upstream failures return a fixed fallback reply
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body object true "Message"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "message required"))
		return
	}

	reply := h.assistant.Chat(c.Request.Context(), payload.Message)
	response.JSON(c, http.StatusOK, gin.H{"reply": reply})
}
