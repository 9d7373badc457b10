package main

import (
	"fmt"

	authapi "codeberg.org/quickai/server/api/rest/auth"
	creationsapi "codeberg.org/quickai/server/api/rest/creations"
	"codeberg.org/quickai/server/api/rest/generate"
	"codeberg.org/quickai/server/api/rest/health"
	usersapi "codeberg.org/quickai/server/api/rest/users"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	router.Use(cors.New(corsConfig))
	router.GET("/health", health.Handler)

	rateLimit, err := RateLimitMiddleware(server.redis)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}

	v1 := router.Group("/api/v1")
	v1.Use(rateLimit)

	{
		v1.GET("/ping", health.PingHandler)

		authapi.RegisterRoutes(v1, server.userRepo)
		generate.RegisterRoutes(v1, server.gateway, server.services.Extractor, server.userRepo)
		creationsapi.RegisterRoutes(v1, server.creationRepo)
		usersapi.RegisterRoutes(v1, server.userRepo)
	}

	return nil
}
