package handlers

import (
	"errors"
	"net/http"

	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/repository"
	"github.com/KBARATH13/QuizCraft/internal/service"
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserHandler struct {
	Users   *repository.UserRepository
	Friends *service.FriendService
}

func NewUserHandler(users *repository.UserRepository, friends *service.FriendService) *UserHandler {
	return &UserHandler{Users: users, Friends: friends}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	if id == "" || id == "me" {
		id = UserID(c)
	}
	user, err := h.Users.FindByID(c.Request.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch user", err)
		return
	}
	utils.SuccessResponse(c, "Profile retrieved", gin.H{
		"user":  user,
		"level": gamification.CalculateLevel(user.XP),
	})
}

type friendRequest struct {
	UserID string `json:"userId"`
}

func (h *UserHandler) SendFriendRequest(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		utils.BadRequestResponse(c, "A userId is required")
		return
	}
	err := h.Friends.SendRequest(c.Request.Context(), UserID(c), req.UserID)
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to send friend request", err)
		return
	}
	utils.SuccessResponse(c, "Friend request sent", nil)
}

func (h *UserHandler) AcceptFriendRequest(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		utils.BadRequestResponse(c, "A userId is required")
		return
	}
	err := h.Friends.Accept(c.Request.Context(), UserID(c), req.UserID)
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to accept friend request", err)
		return
	}
	utils.SuccessResponse(c, "Friend request accepted", nil)
}

func (h *UserHandler) RemoveFriend(c *gin.Context) {
	err := h.Friends.Remove(c.Request.Context(), UserID(c), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to remove friend", err)
		return
	}
	utils.SuccessResponse(c, "Friend removed", nil)
}

func (h *UserHandler) ListFriends(c *gin.Context) {
	friends, err := h.Friends.List(c.Request.Context(), UserID(c))
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list friends", err)
		return
	}
	utils.SuccessResponse(c, "Friends retrieved", friends)
}
