package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/gateway"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// managed Postgres poolers cap connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for PgBouncer compatibility: transaction-mode
	// pooling doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to parse redis config: %w", err)
	}

	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	userRepo := users.NewRepository(db)
	creationRepo := creations.NewRepository(db)

	services, err := InitializeServices(cfg)
	if err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// the users repository is the identity-store side of the quota ledger
	ledger := quota.NewLedger(userRepo)

	gw := gateway.New(ledger, services.Text, services.Images, services.Editor, creationRepo)

	router := gin.Default()

	server := &Server{
		db:           db,
		redis:        redisClient,
		config:       cfg,
		userRepo:     userRepo,
		creationRepo: creationRepo,
		gateway:      gw,
		services:     services,
		router:       router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}
