package users

import (
	"net/http"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
)

// GetUsage godoc
// @Summary Get usage statistics
// @Description Returns the authenticated user's plan, free-tier consumption and remaining quota
// @Tags users
// @Produce json
// @Success 200 {object} UsageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/usage [get]
// @Security BearerAuth
func GetUsage(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch usage data", err)
			return
		}

		limit := quota.FreeLimit
		used := user.FreeUsage
		remaining := limit - used

		if remaining < 0 {
			remaining = 0
		}

		// premium consumption is never tracked
		if user.Plan == string(quota.PlanPremium) {
			limit = -1
			remaining = -1
		}

		c.JSON(http.StatusOK, UsageResponse{
			Plan:      user.Plan,
			Used:      used,
			Limit:     limit,
			Remaining: remaining,
		})
	}
}
