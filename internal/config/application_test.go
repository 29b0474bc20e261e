package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degrootsam/shai-hulud-detector/detector/presenter"
)

func TestLoadApplicationConfigDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	v := viper.New()
	v.Set("output", "json")

	cfg, err := LoadApplicationConfig(v, CliOnlyOptions{})
	require.NoError(t, err)

	assert.Equal(t, presenter.JSONPresenter, cfg.PresenterOpt)
	assert.Equal(t, 6, cfg.Concurrency)
	assert.True(t, cfg.CheckForAppUpdate)
	assert.Equal(t, logrus.WarnLevel, cfg.Log.LevelOpt)
	assert.Equal(t, "env-token", cfg.GithubToken)
}

func TestLoadApplicationConfigBadOutput(t *testing.T) {
	v := viper.New()
	v.Set("output", "yaml")

	_, err := LoadApplicationConfig(v, CliOnlyOptions{})
	assert.ErrorContains(t, err, "bad --output value")
}

func TestLoadApplicationConfigVerbosity(t *testing.T) {
	v := viper.New()
	v.Set("output", "table")

	cfg, err := LoadApplicationConfig(v, CliOnlyOptions{Verbosity: 2})
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, cfg.Log.LevelOpt)
}

func TestLoadApplicationConfigQuiet(t *testing.T) {
	v := viper.New()
	v.Set("output", "json")
	v.Set("quiet", true)

	cfg, err := LoadApplicationConfig(v, CliOnlyOptions{})
	require.NoError(t, err)

	assert.Equal(t, logrus.PanicLevel, cfg.Log.LevelOpt)
}

func TestApplicationStringRedactsToken(t *testing.T) {
	cfg := Application{GithubToken: "very-secret"}

	assert.NotContains(t, cfg.String(), "very-secret")
}
