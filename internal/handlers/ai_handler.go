package handlers

import (
	"net/http"

	"github.com/KBARATH13/QuizCraft/internal/generation"
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	Assistant *generation.Assistant
}

func NewAIHandler(assistant *generation.Assistant) *AIHandler {
	return &AIHandler{Assistant: assistant}
}

type doubtRequest struct {
	Question string `json:"question"`
}

// AskDoubt answers a short academic question through the model backend.
func (h *AIHandler) AskDoubt(c *gin.Context) {
	var req doubtRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		utils.BadRequestResponse(c, "A question is required")
		return
	}
	answer, err := h.Assistant.Ask(c.Request.Context(), req.Question)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "The AI service is unavailable", err)
		return
	}
	utils.SuccessResponse(c, "Answer generated", gin.H{"answer": answer})
}
