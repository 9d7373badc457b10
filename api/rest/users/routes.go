package users

import (
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, userRepo *users.Repository) {
	group := rg.Group("/users")
	group.Use(auth.AuthMiddleware()) // all user routes require authentication

	group.GET("/usage", GetUsage(userRepo))
}
