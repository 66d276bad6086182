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

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(ContextUserID),
			"role":    c.GetString(ContextUserRole),
		})
	})
	r.GET("/barber-only", AuthMiddleware(cfg), RequireBarber(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r := newAuthRouter()

	token := signToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleCustomer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doGet(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r := newAuthRouter()

	// sem header
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "").Code)

	// esquema errado
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "Basic abc").Code)

	// token adulterado
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "Bearer abc.def.ghi").Code)

	// token expirado
	expired := signToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleCustomer,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/protected", "Bearer "+expired).Code)
}

func TestRequireBarber(t *testing.T) {
	r := newAuthRouter()

	customer := signToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": models.RoleCustomer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusForbidden, doGet(r, "/barber-only", "Bearer "+customer).Code)

	barber := signToken(t, jwt.MapClaims{
		"sub":  float64(8),
		"role": models.RoleBarber,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusOK, doGet(r, "/barber-only", "Bearer "+barber).Code)
}
