package imaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClipDrop(serverURL string) *ClipDropClient {
	client := NewClipDropClient("test-key")
	client.endpoint = serverURL

	return client
}

func TestSynthesize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a lighthouse at dusk", r.FormValue("prompt"))

		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'}) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClipDrop(server.URL)

	image, err := client.Synthesize(context.Background(), "a lighthouse at dusk")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, image)
}

func TestSynthesize_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClipDrop(server.URL)

	_, err := client.Synthesize(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSynthesize_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClipDrop(server.URL)

	_, err := client.Synthesize(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty image")
}
