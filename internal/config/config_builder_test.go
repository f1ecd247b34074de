// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the smallest config that passes validation.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/cats"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation,
// since the sign key and DSN have no defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder(nil).build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// layers win while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{TokenIssuer: "override"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, 5*time.Hour, b.configs[0].App.TokenDuration)
	assert.Equal(t, 12, b.configs[0].App.PasswordHashCost)
	assert.Equal(t, DefaultCatAPIBaseURL, b.configs[0].Adapter.CatAPI.BaseURL)
	assert.Empty(t, b.configs[0].App.TokenSignKey)
	assert.Empty(t, b.configs[0].Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder(nil)
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion errors are kept.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "forever"})

	b := newConfigBuilder(nil)
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withFlags())
}

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-token-sign-key", "from-flag"})
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-flag", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-what"})
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_PriorityOrder verifies defaults < env < flags < JSON.
func TestChain_PriorityOrder(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"APP_TOKEN_ISSUER":        "env-issuer",
		"STORAGE_DB_DATABASE_URI": "postgres://env/cats",
		"CONFIG":                  path,
	})

	cfg, err := newConfigBuilder([]string{"-d", "postgres://flag/cats"}).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://flag/cats", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}
