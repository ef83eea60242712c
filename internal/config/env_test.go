// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/note-keeper/notes.db",

		"WORKERS_BACKUP_DIR":      "/var/backups/notes",
		"WORKERS_BACKUP_INTERVAL": "1h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/lib/note-keeper/notes.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "/var/backups/notes", cfg.Workers.BackupDir)
	assert.Equal(t, time.Hour, cfg.Workers.BackupInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	envVars := map[string]string{
		"STORAGE_DB_DATABASE_URI": "notes.db",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Workers.BackupDir)
	assert.Zero(t, cfg.Workers.BackupInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	envVars := map[string]string{
		"WORKERS_BACKUP_INTERVAL": "not-a-duration",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	known := []string{
		"CONFIG",
		"APP_VERSION",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"STORAGE_DB_DATABASE_URI",
		"WORKERS_BACKUP_DIR",
		"WORKERS_BACKUP_INTERVAL",
	}
	for _, k := range known {
		require.NoError(t, os.Unsetenv(k))
	}
}
