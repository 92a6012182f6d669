package handlers

import (
	"errors"
	"net/http"

	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/repository"
	"github.com/KBARATH13/QuizCraft/internal/service"
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type GamificationHandler struct {
	Users       *repository.UserRepository
	Badges      *repository.BadgeRepository
	Leaderboard *service.LeaderboardService
}

func NewGamificationHandler(users *repository.UserRepository, badges *repository.BadgeRepository, leaderboard *service.LeaderboardService) *GamificationHandler {
	return &GamificationHandler{Users: users, Badges: badges, Leaderboard: leaderboard}
}

type badgeStatus struct {
	models.Badge
	Earned   bool `json:"earned"`
	Featured bool `json:"featured"`
}

// ListBadges returns every badge definition annotated with the caller's
// earned and featured status.
func (h *GamificationHandler) ListBadges(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.Users.FindByID(ctx, UserID(c))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch user", err)
		return
	}
	badges, err := h.Badges.FindAll(ctx)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch badges", err)
		return
	}

	featured := make(map[string]bool, len(user.DisplayedBadges))
	for _, name := range user.DisplayedBadges {
		featured[name] = true
	}
	statuses := make([]badgeStatus, 0, len(badges))
	for _, b := range badges {
		statuses = append(statuses, badgeStatus{
			Badge:    b,
			Earned:   user.HasBadge(b.Name),
			Featured: featured[b.Name],
		})
	}
	utils.SuccessResponse(c, "Badges retrieved", statuses)
}

type displayedBadgesRequest struct {
	Badges []string `json:"badges"`
}

// UpdateDisplayedBadges replaces the featured badge selection. Only earned
// badges may be featured, and no more than the cap.
func (h *GamificationHandler) UpdateDisplayedBadges(c *gin.Context) {
	var req displayedBadgesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payload")
		return
	}
	if len(req.Badges) > gamification.FeaturedBadgeLimit {
		utils.ErrorResponse(c, http.StatusBadRequest, "Too many featured badges", nil)
		return
	}
	ctx := c.Request.Context()
	user, err := h.Users.FindByID(ctx, UserID(c))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch user", err)
		return
	}
	for _, name := range req.Badges {
		if !user.HasBadge(name) {
			utils.BadRequestResponse(c, "Cannot feature a badge you have not earned: "+name)
			return
		}
	}
	if err := h.Users.SetDisplayedBadges(ctx, user.ID, req.Badges); err != nil {
		utils.InternalErrorResponse(c, "Failed to update featured badges", err)
		return
	}
	utils.SuccessResponse(c, "Featured badges updated", req.Badges)
}

func (h *GamificationHandler) GetLevel(c *gin.Context) {
	user, err := h.Users.FindByID(c.Request.Context(), UserID(c))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch user", err)
		return
	}
	utils.SuccessResponse(c, "Level retrieved", gamification.CalculateLevel(user.XP))
}

func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.Leaderboard.Top(c.Request.Context(),
		c.Query("country"), c.Query("subdivision1"), c.Query("subdivision2"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch leaderboard", err)
		return
	}
	utils.SuccessResponse(c, "Leaderboard retrieved", entries)
}

func (h *GamificationHandler) GetClassroomLeaderboard(c *gin.Context) {
	entries, err := h.Leaderboard.Classroom(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch classroom leaderboard", err)
		return
	}
	utils.SuccessResponse(c, "Classroom leaderboard retrieved", entries)
}
