package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin", AdminMiddleware(token), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminMiddleware_ValidToken(t *testing.T) {
	r := adminTestRouter("super-secret")

	req := httptest.NewRequest(http.MethodPatch, "/admin", nil)
	req.Header.Set(AdminTokenHeader, "super-secret")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminMiddleware_RejectsBadRequests(t *testing.T) {
	r := adminTestRouter("super-secret")

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"wrong token", "guess"},
		{"prefix of the token", "super"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/admin", nil)
			if c.token != "" {
				req.Header.Set(AdminTokenHeader, c.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestAdminMiddleware_DisabledWhenUnconfigured(t *testing.T) {
	r := adminTestRouter("")

	// Even an empty presented token must not match an empty configured one.
	req := httptest.NewRequest(http.MethodPatch, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
