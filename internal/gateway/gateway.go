// Package gateway sequences every generation request: quota check, provider
// call, best-effort record persistence, best-effort usage commit, response.
package gateway

import (
	"context"
	"errors"

	"codeberg.org/quickai/server/internal/imaging"
	"codeberg.org/quickai/server/internal/llm"
	"codeberg.org/quickai/server/internal/logger"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
)

const (
	blogTitleInstruction = "You are a copywriter. Generate a single short, catchy blog title for the topic the user gives you. Respond with the title only, no quotes or explanations."
	resumeReviewPrompt   = "Review this resume: "

	blogTitleMaxTokens = 150
	resumeMaxTokens    = 1500

	// fixed record labels for kinds that have no user prompt to store
	labelBackgroundRemoval = "Background Removal"
	labelObjectRemoval     = "Object Removal"
	labelResumeReview      = "Resume Review"
)

// user-facing messages for policy rejections
const (
	msgLimitsReached   = "Limits reached. Upgrade to continue."
	msgPremiumRequired = "Premium required"
)

// orchestrates generation requests across the quota ledger, the providers
// and the record store
type Gateway struct {
	ledger  *quota.Ledger
	text    llm.TextGenerator
	images  imaging.Synthesizer
	editor  imaging.Editor
	records Recorder
}

func New(
	ledger *quota.Ledger,
	text llm.TextGenerator,
	images imaging.Synthesizer,
	editor imaging.Editor,
	records Recorder,
) *Gateway {
	return &Gateway{
		ledger:  ledger,
		text:    text,
		images:  images,
		editor:  editor,
		records: records,
	}
}

// generates a long-form article from a prompt. Metered.
func (g *Gateway) GenerateArticle(ctx context.Context, account quota.Account, prompt string, length int) Result {
	return g.run(ctx, account, quota.KindArticle, prompt, false, func(ctx context.Context) (string, error) {
		return g.text.GenerateText(ctx, llm.TextRequest{
			Prompt:    prompt,
			MaxTokens: length,
		})
	})
}

// generates a short blog title from a topic prompt. Metered.
func (g *Gateway) GenerateBlogTitle(ctx context.Context, account quota.Account, prompt string) Result {
	return g.run(ctx, account, quota.KindBlogTitle, prompt, false, func(ctx context.Context) (string, error) {
		return g.text.GenerateText(ctx, llm.TextRequest{
			Prompt:    prompt,
			System:    blogTitleInstruction,
			MaxTokens: blogTitleMaxTokens,
		})
	})
}

// synthesizes an image from a prompt and hosts it. Premium only.
func (g *Gateway) GenerateImage(ctx context.Context, account quota.Account, prompt string, publish bool) Result {
	return g.run(ctx, account, quota.KindImage, prompt, publish, func(ctx context.Context) (string, error) {
		image, err := g.images.Synthesize(ctx, prompt)
		if err != nil {
			return "", err
		}

		return g.editor.Upload(ctx, image)
	})
}

// removes the background from an uploaded image. Premium only.
func (g *Gateway) RemoveBackground(ctx context.Context, account quota.Account, image []byte) Result {
	return g.run(ctx, account, quota.KindBackgroundRemoval, labelBackgroundRemoval, false, func(ctx context.Context) (string, error) {
		return g.editor.RemoveBackground(ctx, image)
	})
}

// removes a named object from an uploaded image. Premium only.
func (g *Gateway) RemoveObject(ctx context.Context, account quota.Account, image []byte, object string) Result {
	return g.run(ctx, account, quota.KindObjectRemoval, labelObjectRemoval, false, func(ctx context.Context) (string, error) {
		return g.editor.RemoveObject(ctx, image, object)
	})
}

// reviews already-extracted resume text. Premium only.
func (g *Gateway) ReviewResume(ctx context.Context, account quota.Account, resumeText string) Result {
	return g.run(ctx, account, quota.KindResumeReview, labelResumeReview, false, func(ctx context.Context) (string, error) {
		return g.text.GenerateText(ctx, llm.TextRequest{
			Prompt:    resumeReviewPrompt + resumeText,
			MaxTokens: resumeMaxTokens,
		})
	})
}

// run walks one request through the state machine:
//
//	check -> provider call -> record (best-effort) -> commit (best-effort) -> respond
//
// The provider call is the only step allowed to fail the response. Record
// and commit failures are logged and swallowed: a dropped audit row or a
// dropped counter increment never tells the user their generation failed.
func (g *Gateway) run(
	ctx context.Context,
	account quota.Account,
	kind quota.Kind,
	label string,
	publish bool,
	call func(ctx context.Context) (string, error),
) Result {
	if err := g.ledger.CheckAndReserve(account, kind); err != nil {
		return rejection(err)
	}

	content, err := call(ctx)

	if err == nil && content == "" {
		err = errors.New("provider returned empty content")
	}

	if err != nil {
		logger.ErrorErr(err, "generation failed",
			"kind", string(kind),
			"user_id", account.ID,
		)

		return Result{Success: false, Message: err.Error()}
	}

	record := &creations.Creation{
		UserID:  account.ID,
		Prompt:  label,
		Content: content,
		Type:    recordType(kind),
		Publish: publish,
	}

	if err := g.records.Create(ctx, record); err != nil {
		logger.ErrorErr(err, "failed to record creation",
			"kind", string(kind),
			"user_id", account.ID,
		)
	}

	if err := g.ledger.Commit(ctx, account, kind); err != nil {
		logger.ErrorErr(err, "failed to commit usage",
			"kind", string(kind),
			"user_id", account.ID,
		)
	}

	return Result{Success: true, Content: content}
}

// maps policy errors to their user-facing envelope
func rejection(err error) Result {
	message := msgPremiumRequired

	if errors.Is(err, quota.ErrQuotaExceeded) {
		message = msgLimitsReached
	}

	return Rejection(message)
}

// the stored record type: all image operations log as "image"
func recordType(kind quota.Kind) string {
	switch kind {
	case quota.KindImage, quota.KindBackgroundRemoval, quota.KindObjectRemoval:
		return "image"
	}

	return string(kind)
}
