package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestRateLimitMiddleware checks rate limiting blocks excessive requests
func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := testApp(t)
	app.Config.RateLimitRPS = 1
	app.Config.RateLimitBurst = 3

	router := gin.New()
	router.Use(app.rateLimitMiddleware())
	router.GET("/limited", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = "127.0.0.1:12345"

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("4th request: expected 429 Too Many Requests, got %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requestIDMiddleware())
	var seen string
	router.GET("/id", func(c *gin.Context) {
		seen = requestID(c.Request.Context())
	})

	req, _ := http.NewRequest("GET", "/id", nil)
	req.Header.Set("X-Request-Id", "given-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if seen != "given-id" || w.Header().Get("X-Request-Id") != "given-id" {
		t.Errorf("request id = %q, header = %q", seen, w.Header().Get("X-Request-Id"))
	}

	req, _ = http.NewRequest("GET", "/id", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if len(seen) != 36 {
		t.Errorf("generated request id %q is not a uuid", seen)
	}
}

func TestCacheMiddleware(t *testing.T) {
	app, router := setupTestRouter(t)

	get := func(path string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if got := get("/").Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("GET / Cache-Control = %q, want no-store", got)
	}
	if got := get("/static/style.css").Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("static asset in development Cache-Control = %q, want no-store", got)
	}

	app.IsProduction = true
	w := get("/static/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /static/style.css returned %d", w.Code)
	}
	cc := w.Header().Get("Cache-Control")
	if !strings.Contains(cc, "public") || !strings.Contains(cc, "max-age=300") {
		t.Errorf("static asset in production Cache-Control = %q, want public, max-age=300", cc)
	}
	if strings.Contains(cc, "no-store") {
		t.Errorf("static asset in production should be cacheable, got %q", cc)
	}
	if !strings.Contains(w.Header().Get("Vary"), "Accept-Encoding") {
		t.Errorf("Vary = %q, want Accept-Encoding", w.Header().Get("Vary"))
	}
	if got := get("/").Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("GET / in production Cache-Control = %q, want no-store", got)
	}
}
