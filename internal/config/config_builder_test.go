package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsOnly verifies that building from defaults alone yields
// the built-in deployment values and passes validation.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.SecretKey)
	assert.Equal(t, "authentication", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 365*24*time.Hour, cfg.App.RememberDuration)

	assert.Equal(t, "http://storage:5001", cfg.Storage.URL)
	assert.Equal(t, 5*time.Second, cfg.Storage.RequestTimeout)
	assert.Empty(t, cfg.Storage.DSN)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HTTPAddress)
}

// TestBuild_FirstNonZeroWins verifies the merge priority: values appended
// earlier take precedence over later ones for the same field.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:    App{SecretKey: "from-env"},
		Server: Server{HTTPAddress: "127.0.0.1:9999"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.SecretKey)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)

	// Fields the override left empty fall through to the defaults.
	assert.Equal(t, "authentication", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
}

// TestBuild_EnvOverridesDefaults exercises the real env source end to end.
func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("SESSION_DURATION", "1h")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.SecretKey)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "http://storage:5001", cfg.Storage.URL)
}

func TestValidate(t *testing.T) {
	valid := StructuredConfig{
		App:    App{SecretKey: "secret", SessionDuration: time.Hour},
		Server: Server{HTTPAddress: ":5000"},
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid
		require.NoError(t, cfg.validate())
	})

	t.Run("missing secret key", func(t *testing.T) {
		cfg := valid
		cfg.App.SecretKey = ""
		require.ErrorIs(t, cfg.validate(), ErrNoSecretKey)
	})

	t.Run("missing server address", func(t *testing.T) {
		cfg := valid
		cfg.Server.HTTPAddress = ""
		require.ErrorIs(t, cfg.validate(), ErrNoServerAddress)
	})

	t.Run("non-positive session duration", func(t *testing.T) {
		cfg := valid
		cfg.App.SessionDuration = 0
		require.ErrorIs(t, cfg.validate(), ErrNoSessionDuration)
	})
}
