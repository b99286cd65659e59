package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhufei/sports-backend/internal/config"
	"github.com/zhufei/sports-backend/internal/service"
)

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func newProbeRouter(authService *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireAdminJWT(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	r.GET("/ws-probe", RequireAdminWSAuth(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func TestRequireAdminJWTMissingHeader(t *testing.T) {
	r := newProbeRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRequireAdminJWTWrongScheme(t *testing.T) {
	authService := newTestAuthService()
	token, err := authService.GenerateToken(1, "admin", "Admin")
	require.NoError(t, err)

	r := newProbeRouter(authService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminJWTGarbageToken(t *testing.T) {
	r := newProbeRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminJWTValidToken(t *testing.T) {
	authService := newTestAuthService()
	token, err := authService.GenerateToken(1, "zhufei", "Admin")
	require.NoError(t, err)

	r := newProbeRouter(authService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"zhufei"`)
}

func TestRequireAdminWSAuthQueryToken(t *testing.T) {
	authService := newTestAuthService()
	token, err := authService.GenerateToken(1, "zhufei", "Admin")
	require.NoError(t, err)

	r := newProbeRouter(authService)

	// Missing token.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws-probe", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token via query param.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ws-probe?token="+token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
