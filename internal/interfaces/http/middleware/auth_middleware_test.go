package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scheme-sense.backend/pkg/jwt"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Minute, time.Minute)
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "9876543210")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		gotID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)

		phone, ok := GetUserPhone(c)
		assert.True(t, ok)
		assert.Equal(t, "9876543210", phone)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectsBadRequests(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Minute, time.Minute)
	expiredSvc := jwt.NewJWTService("test-secret", -time.Minute, -time.Minute)
	expired, err := expiredSvc.GenerateTokenPair(uuid.New(), "9876543210")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc"},
		{"garbage token", BearerPrefix + "garbage"},
		{"expired token", BearerPrefix + expired.AccessToken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if c.header != "" {
				req.Header.Set(AuthorizationHeader, c.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set(UserIDKey, "not-a-uuid-type")
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
