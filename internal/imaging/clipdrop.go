package imaging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const clipdropTextToImageURL = "https://clipdrop-api.co/text-to-image/v1"

// shared HTTP client for ClipDrop API calls
var clipdropHTTPClient = &http.Client{
	Timeout: 120 * time.Second, // image synthesis is slow
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for ClipDrop calls (10 requests/second, burst of 5)
var clipdropRateLimiter = rate.NewLimiter(10, 5)

// ClipDrop text-to-image client
type ClipDropClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewClipDropClient(apiKey string) *ClipDropClient {
	return &ClipDropClient{
		apiKey:     apiKey,
		endpoint:   clipdropTextToImageURL,
		httpClient: clipdropHTTPClient,
	}
}

// sends a prompt to the text-to-image endpoint and returns raw PNG bytes
func (c *ClipDropClient) Synthesize(ctx context.Context, prompt string) ([]byte, error) {
	var body bytes.Buffer

	form := multipart.NewWriter(&body)

	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("x-api-key", c.apiKey)

	// rate limiting
	if err := clipdropRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(data))
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("provider returned empty image")
	}

	return data, nil
}
