package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assignments/internal/config"
	"assignments/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewAppWiring(t *testing.T) {
	cfg := config.Config{
		AssignmentStore: config.StoreORM,
		JWTSecret:       "test_jwt_secret",
		JWTIssuer:       "test-issuer",
		JWTAudience:     "test-audience",
		TokenLifetime:   time.Hour,
	}

	db, err := gorm.Open(sqlite.Open("file:mainwiring?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Assignment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	app := newApp(cfg, db, nil, nil)

	// Health endpoint is public.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	resp.Body.Close()

	// Assignment routes sit behind the token gate.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assignments", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Auth routes do not.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil), -1)
	assert.NoError(t, err)
	assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
