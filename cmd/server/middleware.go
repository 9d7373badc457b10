package main

import (
	"fmt"

	"codeberg.org/quickai/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// per-client request budget for the API group
const rateLimitFormat = "60-M"

// creates a Redis-backed per-IP rate limiting middleware
func RateLimitMiddleware(client *redis.Client) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(rateLimitFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "quickai:ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	middleware := mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "rate limit exceeded, slow down")
		}),
	)

	return middleware, nil
}
