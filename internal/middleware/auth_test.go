package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "a1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func adminRouter(storage session.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireAdminSession(storage), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func requestStatus(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRequireAdminSessionMissingToken(t *testing.T) {
	storage := session.NewMemory()
	assert.Equal(t, http.StatusUnauthorized, requestStatus(adminRouter(storage)))
}

func TestRequireAdminSessionValidToken(t *testing.T) {
	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, signToken(t, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, requestStatus(adminRouter(storage)))
}

func TestRequireAdminSessionExpiredToken(t *testing.T) {
	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, signToken(t, time.Now().Add(-time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, requestStatus(adminRouter(storage)))
}

func TestRequireAdminSessionTokenWithoutExpiry(t *testing.T) {
	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, signToken(t, time.Time{}))
	assert.Equal(t, http.StatusOK, requestStatus(adminRouter(storage)))
}

func TestRequireAdminSessionOpaqueTokenPassesThrough(t *testing.T) {
	// Not every backend token is a JWT; opaque tokens are left for the
	// backend to judge.
	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, "opaque-session-token")
	assert.Equal(t, http.StatusOK, requestStatus(adminRouter(storage)))
}

func TestRequireStudentSessionUsesStudentKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	storage := session.NewMemory()
	storage.Set(session.KeyAdminToken, signToken(t, time.Now().Add(time.Hour)))

	r := gin.New()
	r.GET("/guarded", RequireStudentSession(storage), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusUnauthorized, requestStatus(r), "an admin token does not satisfy the student gate")
}
