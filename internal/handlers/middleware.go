package handlers

import (
	"github.com/KBARATH13/QuizCraft/internal/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthMiddleware validates the bearer token and stores the user id in the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromToken(c)
		if err != nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
