package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStore struct {
	pingErr error
}

func (s *stubStore) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (s *stubStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

func TestHealthHandler_Ping(t *testing.T) {
	handler := &HealthHandler{
		version: "1.0.0",
	}

	router := gin.New()
	router.GET("/health/ping", handler.Ping)

	req := httptest.NewRequest("GET", "/health/ping", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response["status"] != "pong" {
		t.Errorf("Expected status 'pong', got '%s'", response["status"])
	}
}

func TestHealthHandler_Health(t *testing.T) {
	handler := &HealthHandler{
		version: "1.0.0",
	}

	router := gin.New()
	router.GET("/health", handler.Health)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", response.Status)
	}

	if response.Version != "1.0.0" {
		t.Errorf("Expected version '1.0.0', got '%s'", response.Version)
	}

	if response.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

func TestHealthHandler_Live(t *testing.T) {
	handler := &HealthHandler{
		version: "1.0.0",
	}

	router := gin.New()
	router.GET("/health/live", handler.Live)

	req := httptest.NewRequest("GET", "/health/live", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	handler := NewHealthHandler(&stubStore{}, "1.0.0")

	router := gin.New()
	router.GET("/health/ready", handler.Ready)

	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "ready" {
		t.Errorf("Expected status 'ready', got '%s'", response.Status)
	}

	if response.Services["redis"] != "healthy" {
		t.Errorf("Expected redis healthy, got '%s'", response.Services["redis"])
	}
}

func TestHealthHandler_ReadyStoreDown(t *testing.T) {
	handler := NewHealthHandler(&stubStore{pingErr: errors.New("connection refused")}, "1.0.0")

	router := gin.New()
	router.GET("/health/ready", handler.Ready)

	req := httptest.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "not_ready" {
		t.Errorf("Expected status 'not_ready', got '%s'", response.Status)
	}
}
