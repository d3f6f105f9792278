package config_test

import (
	"testing"
	"time"

	"assignments/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.StoreORM, cfg.AssignmentStore)
	assert.Equal(t, 60*time.Minute, cfg.TokenLifetime)
	assert.NotEmpty(t, cfg.JWTIssuer)
	assert.NotEmpty(t, cfg.JWTAudience)
}

func TestLoad_TokenLifetimeFromEnv(t *testing.T) {
	t.Setenv("JWT_DURATION_MINUTES", "15")
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TokenLifetime)
}

func TestLoad_NonNumericLifetimeFails(t *testing.T) {
	t.Setenv("JWT_DURATION_MINUTES", "soon")
	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_DURATION_MINUTES")
}

func TestLoad_NegativeLifetimeFails(t *testing.T) {
	t.Setenv("JWT_DURATION_MINUTES", "-5")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_UnknownStoreFails(t *testing.T) {
	t.Setenv("ASSIGNMENT_STORE", "csv")
	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ASSIGNMENT_STORE")
}

func TestLoad_ProcedureStoreAccepted(t *testing.T) {
	t.Setenv("ASSIGNMENT_STORE", "procedure")
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, config.StoreProcedure, cfg.AssignmentStore)
}
