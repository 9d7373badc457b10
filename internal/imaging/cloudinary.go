package imaging

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	cloudinaryUploadBaseURL   = "https://api.cloudinary.com/v1_1"
	cloudinaryDeliveryBaseURL = "https://res.cloudinary.com"

	backgroundRemovalEffect = "e_background_removal"
)

// shared HTTP client for Cloudinary API calls
var cloudinaryHTTPClient = &http.Client{
	Timeout: 120 * time.Second, // background removal runs at upload time
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Cloudinary upload API client implementing Editor
type CloudinaryClient struct {
	config      CloudinaryConfig
	uploadURL   string // <base>/<cloud>/image/upload
	deliveryURL string // <base>/<cloud>/image/upload
	httpClient  *http.Client
	now         func() time.Time
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

func NewCloudinaryClient(config CloudinaryConfig) *CloudinaryClient {
	return &CloudinaryClient{
		config:      config,
		uploadURL:   fmt.Sprintf("%s/%s/image/upload", cloudinaryUploadBaseURL, config.CloudName),
		deliveryURL: fmt.Sprintf("%s/%s/image/upload", cloudinaryDeliveryBaseURL, config.CloudName),
		httpClient:  cloudinaryHTTPClient,
		now:         time.Now,
	}
}

// uploads an image and returns its hosted URL
func (c *CloudinaryClient) Upload(ctx context.Context, image []byte) (string, error) {
	resp, err := c.upload(ctx, image, nil)
	if err != nil {
		return "", err
	}

	return resp.SecureURL, nil
}

// uploads an image with background removal applied at upload time
func (c *CloudinaryClient) RemoveBackground(ctx context.Context, image []byte) (string, error) {
	resp, err := c.upload(ctx, image, map[string]string{
		"transformation": backgroundRemovalEffect,
	})
	if err != nil {
		return "", err
	}

	return resp.SecureURL, nil
}

// uploads an image and returns a delivery URL with the named object
// generatively removed
func (c *CloudinaryClient) RemoveObject(ctx context.Context, image []byte, object string) (string, error) {
	resp, err := c.upload(ctx, image, nil)
	if err != nil {
		return "", err
	}

	effect := "e_gen_remove:" + url.PathEscape(object)

	return fmt.Sprintf("%s/%s/%s", c.deliveryURL, effect, resp.PublicID), nil
}

// performs a signed upload to the Cloudinary upload API
func (c *CloudinaryClient) upload(ctx context.Context, image []byte, params map[string]string) (*uploadResponse, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("no image data to upload")
	}

	timestamp := fmt.Sprintf("%d", c.now().Unix())

	signed := map[string]string{"timestamp": timestamp}
	for k, v := range params {
		signed[k] = v
	}

	form := url.Values{}
	form.Set("file", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(image))
	form.Set("api_key", c.config.APIKey)
	form.Set("signature", c.sign(signed))

	for k, v := range signed {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var uploadResp uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if uploadResp.SecureURL == "" {
		return nil, fmt.Errorf("no asset URL in response")
	}

	return &uploadResp, nil
}

// computes the upload API signature: sha1 of the sorted signed params
// concatenated with the API secret
func (c *CloudinaryClient) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.config.APISecret))

	return hex.EncodeToString(sum[:])
}
