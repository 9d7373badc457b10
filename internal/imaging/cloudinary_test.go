package imaging

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudinary(serverURL string) *CloudinaryClient {
	client := NewCloudinaryClient(CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key-123",
		APISecret: "secret-456",
	})
	client.uploadURL = serverURL
	client.deliveryURL = "https://res.cloudinary.com/demo/image/upload"
	client.now = func() time.Time { return time.Unix(1700000000, 0) }

	return client
}

func TestUpload_SignedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "key-123", r.FormValue("api_key"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Contains(t, r.FormValue("file"), "data:image/png;base64,")

		// signature covers the sorted signed params plus the secret
		sum := sha1.Sum([]byte("timestamp=1700000000" + "secret-456"))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.FormValue("signature"))

		w.Write([]byte(`{"public_id":"abc123","secure_url":"https://res.cloudinary.com/demo/image/upload/abc123.png","format":"png","bytes":4}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestCloudinary(server.URL)

	hosted, err := client.Upload(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/abc123.png", hosted)
}

func TestUpload_EmptyImage(t *testing.T) {
	client := newTestCloudinary("http://unused")

	_, err := client.Upload(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image data")
}

func TestRemoveBackground_TransformationSigned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "e_background_removal", r.FormValue("transformation"))

		sum := sha1.Sum([]byte("timestamp=1700000000&transformation=e_background_removal" + "secret-456"))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.FormValue("signature"))

		w.Write([]byte(`{"public_id":"abc123","secure_url":"https://res.cloudinary.com/demo/image/upload/no-bg.png"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestCloudinary(server.URL)

	hosted, err := client.RemoveBackground(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/no-bg.png", hosted)
}

func TestRemoveObject_DeliveryURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"public_id":"abc123","secure_url":"https://res.cloudinary.com/demo/image/upload/abc123.png"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestCloudinary(server.URL)

	hosted, err := client.RemoveObject(context.Background(), []byte("img"), "lamp post")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/e_gen_remove:lamp%20post/abc123", hosted)
}

func TestUpload_MissingSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"public_id":"abc123"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestCloudinary(server.URL)

	_, err := client.Upload(context.Background(), []byte("img"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no asset URL")
}

func TestUpload_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid Signature"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestCloudinary(server.URL)

	_, err := client.Upload(context.Background(), []byte("img"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
