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
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAdminEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AuthOptional(testSecret))
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })
	r.GET("/admin", RequireRoles("admin"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func token(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	tok, err := SignToken(secret, Claims{
		UserID:           7,
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, path, auth string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newAdminEngine()

	w := do(r, "/open", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	w = do(r, "/open", "", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	r := newAdminEngine()
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name string
		auth string
		want int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"admin", "Bearer " + token(t, testSecret, "admin", future), http.StatusNoContent},
		{"admin mixed case", "Bearer " + token(t, testSecret, "Admin", future), http.StatusNoContent},
		{"other role", "Bearer " + token(t, testSecret, "user", future), http.StatusForbidden},
		{"wrong secret", "Bearer " + token(t, "other", "admin", future), http.StatusUnauthorized},
		{"expired", "Bearer " + token(t, testSecret, "admin", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"not bearer", "Basic Zm9vOmJhcg==", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, "/admin", tc.auth, nil)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthOptionalPassesWithoutToken(t *testing.T) {
	r := newAdminEngine()
	w := do(r, "/open", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/x", "", map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, "/x", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
