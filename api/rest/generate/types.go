package generate

import (
	"context"

	"codeberg.org/quickai/server/internal/gateway"
	"codeberg.org/quickai/server/internal/quota"
)

// the gateway surface the handlers depend on
type Orchestrator interface {
	GenerateArticle(ctx context.Context, account quota.Account, prompt string, length int) gateway.Result
	GenerateBlogTitle(ctx context.Context, account quota.Account, prompt string) gateway.Result
	GenerateImage(ctx context.Context, account quota.Account, prompt string, publish bool) gateway.Result
	RemoveBackground(ctx context.Context, account quota.Account, image []byte) gateway.Result
	RemoveObject(ctx context.Context, account quota.Account, image []byte, object string) gateway.Result
	ReviewResume(ctx context.Context, account quota.Account, resumeText string) gateway.Result
}

// request body for article generation
type ArticleRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Length int    `json:"length"`
}

// request body for blog title generation
type BlogTitleRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// request body for image synthesis
type ImageRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Publish bool   `json:"publish"`
}
