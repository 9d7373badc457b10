package generate

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/quickai/server/internal/gateway"
	"codeberg.org/quickai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Orchestrator for testing
type mockOrchestrator struct {
	result       gateway.Result
	lastPrompt   string
	lastLength   int
	lastPublish  bool
	lastObject   string
	lastImage    []byte
	lastResume   string
	lastAccount  quota.Account
}

func (m *mockOrchestrator) GenerateArticle(_ context.Context, account quota.Account, prompt string, length int) gateway.Result {
	m.lastAccount, m.lastPrompt, m.lastLength = account, prompt, length
	return m.result
}

func (m *mockOrchestrator) GenerateBlogTitle(_ context.Context, account quota.Account, prompt string) gateway.Result {
	m.lastAccount, m.lastPrompt = account, prompt
	return m.result
}

func (m *mockOrchestrator) GenerateImage(_ context.Context, account quota.Account, prompt string, publish bool) gateway.Result {
	m.lastAccount, m.lastPrompt, m.lastPublish = account, prompt, publish
	return m.result
}

func (m *mockOrchestrator) RemoveBackground(_ context.Context, account quota.Account, image []byte) gateway.Result {
	m.lastAccount, m.lastImage = account, image
	return m.result
}

func (m *mockOrchestrator) RemoveObject(_ context.Context, account quota.Account, image []byte, object string) gateway.Result {
	m.lastAccount, m.lastImage, m.lastObject = account, image, object
	return m.result
}

func (m *mockOrchestrator) ReviewResume(_ context.Context, account quota.Account, resumeText string) gateway.Result {
	m.lastAccount, m.lastResume = account, resumeText
	return m.result
}

// implements extract.TextExtractor for testing
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(_ []byte) (string, error) {
	return m.text, m.err
}

func withAccount(account quota.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("account", account)
	}
}

func testAccount() quota.Account {
	return quota.Account{ID: "user-1", Plan: quota.PlanFree}
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string, middleware ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/x", append(middleware, handler)...)

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGenerateArticle_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "Hello world"}}

	w := postJSON(t, GenerateArticle(orch), `{"prompt":"write about go","length":800}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"content":"Hello world"}`, w.Body.String())
	assert.Equal(t, "write about go", orch.lastPrompt)
	assert.Equal(t, 800, orch.lastLength)
	assert.Equal(t, "user-1", orch.lastAccount.ID)
}

func TestGenerateArticle_MissingPrompt(t *testing.T) {
	orch := &mockOrchestrator{}

	w := postJSON(t, GenerateArticle(orch), `{"length":800}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orch.lastPrompt)
}

func TestGenerateArticle_NoAccount(t *testing.T) {
	orch := &mockOrchestrator{}

	w := postJSON(t, GenerateArticle(orch), `{"prompt":"p"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateArticle_RejectionKeepsOKStatus(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Rejection("Limits reached. Upgrade to continue.")}

	w := postJSON(t, GenerateArticle(orch), `{"prompt":"p"}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Limits reached. Upgrade to continue."}`, w.Body.String())
}

func TestGenerateArticle_ProviderFailureIs500(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: false, Message: "API request failed with status 503"}}

	w := postJSON(t, GenerateArticle(orch), `{"prompt":"p"}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGenerateBlogTitle_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "Ten Go Tips"}}

	w := postJSON(t, GenerateBlogTitle(orch), `{"prompt":"go tips"}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "go tips", orch.lastPrompt)
}

func TestGenerateImage_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "https://cdn.example.com/a.png"}}

	w := postJSON(t, GenerateImage(orch), `{"prompt":"a lighthouse","publish":true}`, withAccount(testAccount()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a lighthouse", orch.lastPrompt)
	assert.True(t, orch.lastPublish)
}

// minimal valid PNG header, enough for content-type sniffing
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func postMultipart(t *testing.T, handler gin.HandlerFunc, files map[string][]byte, fields map[string]string, middleware ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer

	form := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := form.CreateFormFile(name, name+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	for name, value := range fields {
		require.NoError(t, form.WriteField(name, value))
	}

	require.NoError(t, form.Close())

	router := gin.New()
	router.POST("/x", append(middleware, handler)...)

	req := httptest.NewRequest(http.MethodPost, "/x", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRemoveBackground_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "https://cdn.example.com/no-bg.png"}}

	w := postMultipart(t, RemoveBackground(orch), map[string][]byte{"image": pngHeader}, nil, withAccount(testAccount()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngHeader, orch.lastImage)
}

func TestRemoveBackground_MissingFile(t *testing.T) {
	orch := &mockOrchestrator{}

	w := postMultipart(t, RemoveBackground(orch), nil, nil, withAccount(testAccount()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, orch.lastImage)
}

func TestRemoveBackground_UnsupportedType(t *testing.T) {
	orch := &mockOrchestrator{}

	w := postMultipart(t, RemoveBackground(orch), map[string][]byte{"image": []byte("plain text")}, nil, withAccount(testAccount()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveObject_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "https://cdn.example.com/clean.png"}}

	w := postMultipart(t, RemoveObject(orch),
		map[string][]byte{"image": pngHeader},
		map[string]string{"object": "lamp post"},
		withAccount(testAccount()),
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lamp post", orch.lastObject)
}

func TestRemoveObject_MissingObject(t *testing.T) {
	orch := &mockOrchestrator{}

	w := postMultipart(t, RemoveObject(orch), map[string][]byte{"image": pngHeader}, nil, withAccount(testAccount()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewResume_OK(t *testing.T) {
	orch := &mockOrchestrator{result: gateway.Result{Success: true, Content: "Strong candidate."}}
	extractor := &mockExtractor{text: "ten years of Go experience"}

	w := postMultipart(t, ReviewResume(orch, extractor),
		map[string][]byte{"resume": []byte("%PDF-1.7\nresume body")},
		nil,
		withAccount(testAccount()),
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ten years of Go experience", orch.lastResume)
}

func TestReviewResume_NotPDF(t *testing.T) {
	orch := &mockOrchestrator{}
	extractor := &mockExtractor{text: "x"}

	w := postMultipart(t, ReviewResume(orch, extractor),
		map[string][]byte{"resume": []byte("not a pdf")},
		nil,
		withAccount(testAccount()),
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orch.lastResume)
}
