package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"scheme-sense.backend/internal/interfaces/http/handlers"
	"scheme-sense.backend/internal/interfaces/http/middleware"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:        &handlers.AuthHandler{},
		schemeHandler:      &handlers.SchemeHandler{},
		applicationHandler: &handlers.ApplicationHandler{},
		advisoryHandler:    &handlers.AdvisoryHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Next()
		},
		adminMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/refresh"},
		{"GET", "/api/v1/user/profile"},
		{"PUT", "/api/v1/user/profile"},
		{"GET", "/api/v1/schemes/eligible"},
		{"GET", "/api/v1/schemes/:id"},
		{"GET", "/api/v1/locations/districts"},
		{"GET", "/api/v1/locations/districts/:district/blocks"},
		{"POST", "/api/v1/applications"},
		{"GET", "/api/v1/applications"},
		{"PATCH", "/api/v1/applications/:id/status"},
		{"POST", "/api/v1/advisory/schemes/:id/advice"},
		{"POST", "/api/v1/advisory/conversations"},
		{"POST", "/api/v1/advisory/conversations/:id/messages"},
		{"DELETE", "/api/v1/advisory/conversations/:id"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_StatusUpdateRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, routeDeps{
		authHandler:        &handlers.AuthHandler{},
		schemeHandler:      &handlers.SchemeHandler{},
		applicationHandler: handlers.NewApplicationHandler(nil),
		advisoryHandler:    &handlers.AdvisoryHandler{},
		authMiddleware:     func(c *gin.Context) { c.Next() },
		adminMiddleware:    middleware.AdminMiddleware("letmein"),
	})

	// An authenticated citizen without the admin credential is turned away.
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/not-a-uuid/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without admin token, got %d", rec.Code)
	}

	// With the credential the request reaches the handler.
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/applications/not-a-uuid/status", nil)
	req.Header.Set(middleware.AdminTokenHeader, "letmein")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from handler, got %d", rec.Code)
	}
}

func TestRegisterAPIV1Routes_PublicLocationRouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, routeDeps{
		authHandler:        &handlers.AuthHandler{},
		schemeHandler:      handlers.NewSchemeHandler(nil),
		applicationHandler: &handlers.ApplicationHandler{},
		advisoryHandler:    &handlers.AdvisoryHandler{},
		authMiddleware:     func(c *gin.Context) { c.Next() },
		adminMiddleware:    func(c *gin.Context) { c.Next() },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/districts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
