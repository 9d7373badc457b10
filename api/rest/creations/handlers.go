package creations

import (
	"net/http"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/quickai/creations"
	"github.com/gin-gonic/gin"
)

// ListMine godoc
// @Summary List own creations
// @Description Returns the authenticated user's generation history, newest first
// @Tags creations
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/creations [get]
// @Security BearerAuth
func ListMine(repo *creations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		list, err := repo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch creations", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Creations: list})
	}
}

// ListPublished godoc
// @Summary List published creations
// @Description Returns all published image creations for the community feed
// @Tags creations
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/creations/published [get]
// @Security BearerAuth
func ListPublished(repo *creations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.ListPublished(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch published creations", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Creations: list})
	}
}

// ToggleLike godoc
// @Summary Toggle a like
// @Description Adds or removes the authenticated user's like on a published creation
// @Tags creations
// @Produce json
// @Param id path string true "Creation ID"
// @Success 200 {object} CreationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/creations/{id}/like [post]
// @Security BearerAuth
func ToggleLike(repo *creations.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		creationID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		creation, err := repo.ToggleLike(c.Request.Context(), creationID, userID)
		if err != nil {
			errors.NotFound(c, "creation")
			return
		}

		c.JSON(http.StatusOK, CreationResponse{Creation: creation})
	}
}
