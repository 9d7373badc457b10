package creations

import (
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/quickai/creations"
	"github.com/gin-gonic/gin"
)

// registers creation history and community routes
func RegisterRoutes(rg *gin.RouterGroup, repo *creations.Repository) {
	group := rg.Group("/creations")
	group.Use(auth.AuthMiddleware())

	{
		group.GET("", ListMine(repo))
		group.GET("/published", ListPublished(repo))
		group.POST("/:id/like", ToggleLike(repo))
	}
}
