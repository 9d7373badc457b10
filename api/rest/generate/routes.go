package generate

import (
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/extract"
	"github.com/gin-gonic/gin"
)

// registers generation routes. All require an authenticated account with a
// resolved plan and usage counter.
func RegisterRoutes(router *gin.RouterGroup, orch Orchestrator, extractor extract.TextExtractor, resolver auth.AccountResolver) {
	ai := router.Group("/ai")
	ai.Use(auth.AuthMiddleware(), auth.AccountMiddleware(resolver))

	{
		ai.POST("/generate-article", GenerateArticle(orch))
		ai.POST("/generate-blog-title", GenerateBlogTitle(orch))
		ai.POST("/generate-image", GenerateImage(orch))
		ai.POST("/remove-image-background", RemoveBackground(orch))
		ai.POST("/remove-image-object", RemoveObject(orch))
		ai.POST("/resume-review", ReviewResume(orch, extractor))
	}
}
