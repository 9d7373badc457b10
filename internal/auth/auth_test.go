package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/quickai/server/internal/quota"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestGenerateAndValidateJWT(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateJWT("user-42", "dev@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateJWT("user-42", "dev@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_WrongSigningMethod(t *testing.T) {
	setTestSecret(t)

	// alg=none tokens must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-42"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(signed)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	setTestSecret(t)

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func performRequest(handler gin.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateJWT("user-42", "dev@example.com")
	require.NoError(t, err)

	w := performRequest(AuthMiddleware(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	setTestSecret(t)

	w := performRequest(AuthMiddleware(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	setTestSecret(t)

	w := performRequest(AuthMiddleware(), "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setTestSecret(t)

	w := performRequest(AuthMiddleware(), "Bearer bogus")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// implements AccountResolver for testing
type mockResolver struct {
	account quota.Account
	err     error
}

func (m *mockResolver) FindAccount(_ context.Context, _ string) (quota.Account, error) {
	return m.account, m.err
}

func TestAccountMiddleware_LoadsAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := &mockResolver{account: quota.Account{ID: "user-42", Plan: quota.PlanFree, FreeUsage: 3}}

	router := gin.New()
	router.GET("/x",
		func(c *gin.Context) { c.Set("user_id", "user-42") },
		AccountMiddleware(resolver),
		func(c *gin.Context) {
			account, ok := CurrentAccount(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"plan": string(account.Plan), "usage": account.FreeUsage})
		},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan":"free"`)
	assert.Contains(t, w.Body.String(), `"usage":3`)
}

func TestAccountMiddleware_UnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := &mockResolver{err: errors.New("no rows")}

	router := gin.New()
	router.GET("/x",
		func(c *gin.Context) { c.Set("user_id", "ghost") },
		AccountMiddleware(resolver),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccountMiddleware_NoUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/x", AccountMiddleware(&mockResolver{}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
