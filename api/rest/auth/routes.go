package auth

import (
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(userRepo))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
	}
}
