package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// the v1beta endpoint is the most stable OpenAI-compatible shim for Gemini
	geminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	openaiBaseURL       = "https://api.openai.com/v1"

	defaultModel       = "gemini-1.5-flash"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// shared HTTP client for chat completion calls
var chatHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for upstream chat calls (50 requests/second, burst of 10)
var chatRateLimiter = rate.NewLimiter(50, 10)

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int     `json:"index"`
		Message message `json:"message"`
		Finish  string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// OpenAI-compatible chat completions client. Used for both the Gemini shim
// and OpenAI proper; only base URL, key and model differ.
type ChatClient struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

// creates a chat completions client for the configured provider
func NewChatClient(config Config) *ChatClient {
	if config.Model == "" {
		config.Model = defaultModel
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	baseURL := config.BaseURL

	if baseURL == "" {
		switch config.Provider {
		case ProviderOpenAI:
			baseURL = openaiBaseURL
		default:
			baseURL = geminiOpenAIBaseURL
		}
	}

	return &ChatClient{
		config:     config,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: chatHTTPClient,
	}
}

func (c *ChatClient) Model() string {
	return c.config.Model
}

// sends a single-turn prompt and returns the generated text.
// An upstream error, a non-2xx status, or empty content all fail the call;
// empty content is never silently returned.
func (c *ChatClient) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}

	messages := make([]message, 0, 2)

	if req.System != "" {
		messages = append(messages, message{Role: "system", Content: req.System})
	}

	messages = append(messages, message{Role: "user", Content: req.Prompt})

	reqBody := chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	// rate limiting
	if err := chatRateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := strings.TrimSpace(apiResp.Choices[0].Message.Content)

	if content == "" {
		return "", fmt.Errorf("provider returned empty content")
	}

	return content, nil
}
