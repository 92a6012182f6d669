package handlers

import (
	"errors"
	"net/http"

	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/service"
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quizzes *service.QuizService
}

func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		utils.BadRequestResponse(c, "Invalid quiz payload")
		return
	}
	quiz.ID = ""
	quiz.CreatedBy = UserID(c)
	if err := h.Quizzes.Create(c.Request.Context(), &quiz); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to create quiz", err)
		return
	}
	utils.SuccessResponse(c, "Quiz created", quiz)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Quizzes.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "Quiz not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch quiz", err)
		return
	}
	utils.SuccessResponse(c, "Quiz retrieved", quiz)
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Quizzes.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list quizzes", err)
		return
	}
	utils.SuccessResponse(c, "Quizzes retrieved", quizzes)
}

func (h *QuizHandler) ListCategories(c *gin.Context) {
	categories, err := h.Quizzes.Categories(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list categories", err)
		return
	}
	utils.SuccessResponse(c, "Categories retrieved", categories)
}

func (h *QuizHandler) ListAttempts(c *gin.Context) {
	attempts, err := h.Quizzes.AttemptHistory(c.Request.Context(), UserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list attempts", err)
		return
	}
	utils.SuccessResponse(c, "Attempts retrieved", attempts)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	err := h.Quizzes.Delete(c.Request.Context(), c.Param("id"), UserID(c))
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFoundResponse(c, "Quiz not found")
	case errors.Is(err, service.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, "Only the creator can delete a quiz", nil)
	case err != nil:
		utils.InternalErrorResponse(c, "Failed to delete quiz", err)
	default:
		utils.SuccessResponse(c, "Quiz deleted", nil)
	}
}

type submitRequest struct {
	Answers   []int `json:"answers"`
	TimeTaken int   `json:"timeTaken"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid submission payload")
		return
	}
	result, err := h.Quizzes.Submit(c.Request.Context(), UserID(c), c.Param("id"), req.Answers, req.TimeTaken)
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "Quiz not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to submit quiz", err)
		return
	}
	utils.SuccessResponse(c, "Quiz submitted", result)
}
