package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "gpt-4", cfg.ChatModel)
	assert.Equal(t, int64(1000), cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
	assert.Equal(t, "dall-e-3", cfg.ImageModel)
	assert.Equal(t, "1024x1024", cfg.ImageSize)
	assert.Equal(t, "standard", cfg.ImageQuality)
	assert.Equal(t, -1, cfg.MaxRetries)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-env")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4o")
	t.Setenv("OPENAI_REQUEST_TIMEOUT", "15s")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.ChatModel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("OPENAI_IMAGE_QUALITY", "hd")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-image-quality", "standard",
		"-stub",
		"-text-prompt", "Explain X",
	})
	require.NoError(t, err)

	assert.Equal(t, "standard", cfg.ImageQuality)
	assert.True(t, cfg.StubMode)
	assert.Equal(t, "Explain X", cfg.TextPrompt)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("OPENAI_MAX_TOKENS", "many")

	_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.Error(t, err)
}

func TestLoad_UnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := Load(fs, []string{"-api-key", "sk-flag"})
	require.Error(t, err)
}
