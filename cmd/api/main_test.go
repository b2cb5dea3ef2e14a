package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"swolez-api/internal/config"
	"swolez-api/internal/repository"
)

func TestRouterWithoutDatabase(t *testing.T) {
	cfg := &config.Config{
		DatabaseName:     "swolez",
		Port:             "8000",
		LogLevel:         "info",
		LogFormat:        "text",
		GinMode:          "test",
		DBTimeout:        time.Second,
		ShutdownTimeout:  time.Second,
		CORSAllowOrigins: []string{"*"},
	}
	log, _ := test.NewNullLogger()
	router := newRouter(cfg, log, repository.NewDocumentStore(nil, cfg.DBTimeout))

	tests := []struct {
		method, path, body string
		status             int
		contains           string
	}{
		{http.MethodGet, "/", "", http.StatusOK, "Swolez backend running"},
		{http.MethodGet, "/test", "", http.StatusOK, "Available but not initialized"},
		{http.MethodGet, "/api/products", "", http.StatusInternalServerError, "Database not configured"},
		{http.MethodPost, "/api/products", `{"title":"x","price":1,"category":"tops","line":"gymwear"}`, http.StatusInternalServerError, "Database not configured"},
		{http.MethodPost, "/api/products", `{"title":"x","price":1,"category":"shoes","line":"gymwear"}`, http.StatusUnprocessableEntity, "category"},
		{http.MethodPost, "/api/seed", `{"count":3}`, http.StatusInternalServerError, "Database not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouterSkipsHealthLogging(t *testing.T) {
	cfg := &config.Config{GinMode: "test", DBTimeout: time.Second, CORSAllowOrigins: []string{"*"}}
	log, hook := test.NewNullLogger()
	router := newRouter(cfg, log, repository.NewDocumentStore(nil, cfg.DBTimeout))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, healthPath, nil))
	assert.Empty(t, hook.AllEntries())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "/test", entry.Data["path"])
	}
}
