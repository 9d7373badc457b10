package main

import (
	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/extract"
	"codeberg.org/quickai/server/internal/gateway"
	"codeberg.org/quickai/server/internal/imaging"
	"codeberg.org/quickai/server/internal/llm"
	"codeberg.org/quickai/server/quickai/creations"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	redis        *redis.Client
	config       *config.Config
	userRepo     *users.Repository
	creationRepo *creations.Repository
	gateway      *gateway.Gateway
	services     *Services
	router       *gin.Engine
}

// holds all external provider clients
type Services struct {
	Text      llm.TextGenerator
	Images    imaging.Synthesizer
	Editor    imaging.Editor
	Extractor extract.TextExtractor
}
