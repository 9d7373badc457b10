package generate

import (
	"net/http"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/extract"
	"codeberg.org/quickai/server/internal/gateway"
	"codeberg.org/quickai/server/internal/upload"
	"github.com/gin-gonic/gin"
)

// GenerateArticle godoc
// @Summary Generate an article
// @Description Generate a long-form article from a prompt. Counts against the free-plan limit.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ArticleRequest true "Prompt and optional length"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/generate-article [post]
// @Security BearerAuth
func GenerateArticle(orch Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req ArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		respond(c, orch.GenerateArticle(c.Request.Context(), account, req.Prompt, req.Length))
	}
}

// GenerateBlogTitle godoc
// @Summary Generate a blog title
// @Description Generate a short blog title from a topic prompt. Counts against the free-plan limit.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body BlogTitleRequest true "Topic prompt"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/generate-blog-title [post]
// @Security BearerAuth
func GenerateBlogTitle(orch Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req BlogTitleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		respond(c, orch.GenerateBlogTitle(c.Request.Context(), account, req.Prompt))
	}
}

// GenerateImage godoc
// @Summary Generate an image
// @Description Synthesize an image from a prompt and host it. Premium plans only.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ImageRequest true "Prompt and optional publish flag"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/generate-image [post]
// @Security BearerAuth
func GenerateImage(orch Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		respond(c, orch.GenerateImage(c.Request.Context(), account, req.Prompt, req.Publish))
	}
}

// RemoveBackground godoc
// @Summary Remove an image background
// @Description Remove the background from an uploaded image. Premium plans only.
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Source image (png, jpeg or webp)"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/remove-image-background [post]
// @Security BearerAuth
func RemoveBackground(orch Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		image, ok := readImage(c)
		if !ok {
			return
		}

		respond(c, orch.RemoveBackground(c.Request.Context(), account, image))
	}
}

// RemoveObject godoc
// @Summary Remove an object from an image
// @Description Remove a named object from an uploaded image. Premium plans only.
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Source image (png, jpeg or webp)"
// @Param object formData string true "Object to remove"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/remove-image-object [post]
// @Security BearerAuth
func RemoveObject(orch Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		object := c.PostForm("object")
		if object == "" {
			errors.BadRequest(c, "object field is required", nil)
			return
		}

		image, ok := readImage(c)
		if !ok {
			return
		}

		respond(c, orch.RemoveObject(c.Request.Context(), account, image, object))
	}
}

// ReviewResume godoc
// @Summary Review a resume
// @Description Extract text from an uploaded resume PDF and review it. Premium plans only.
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume PDF (max 5 MB)"
// @Success 200 {object} gateway.Result
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/ai/resume-review [post]
// @Security BearerAuth
func ReviewResume(orch Orchestrator, extractor extract.TextExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := auth.CurrentAccount(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		fh, err := c.FormFile("resume")
		if err != nil {
			errors.BadRequest(c, "resume file is required", err)
			return
		}

		data, err := upload.ReadPDF(fh)
		if err != nil {
			errors.BadRequest(c, "invalid resume upload", err)
			return
		}

		text, err := extractor.ExtractText(data)
		if err != nil {
			errors.BadRequest(c, "failed to read resume text", err)
			return
		}

		respond(c, orch.ReviewResume(c.Request.Context(), account, text))
	}
}

// reads and validates the uploaded image; replies with the error itself
func readImage(c *gin.Context) ([]byte, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		errors.BadRequest(c, "image file is required", err)
		return nil, false
	}

	data, err := upload.ReadImage(fh)
	if err != nil {
		errors.BadRequest(c, "invalid image upload", err)
		return nil, false
	}

	return data, true
}

// emits the gateway envelope. Policy rejections are expected outcomes and
// keep an OK status; provider failures surface as server errors.
func respond(c *gin.Context, result gateway.Result) {
	status := http.StatusOK

	if !result.Success && !result.Rejected() {
		status = http.StatusInternalServerError
	}

	c.JSON(status, result)
}
