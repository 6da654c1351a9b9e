package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/speech/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, "female", cfg.Voice)
	require.Equal(t, "mp3", cfg.Format)
	require.Equal(t, "GROQ_API_KEY", cfg.Credential.Name())
	require.Empty(t, cfg.Origins)
}

func TestDefaultPort(t *testing.T) {
	t.Setenv("PORT", "9000")

	require.Equal(t, ":9000", config.Default().Address)
}

func TestParse(t *testing.T) {
	t.Setenv("SPEECH_MODEL", "playai-tts")

	path := writeConfig(t, `
address: ":3000"
credential: SPEECH_API_KEY
cors:
  origins: ["https://example.org"]
synthesizer:
  url: https://api.example.org/v1/
  model: ${SPEECH_MODEL}
  voice: Fritz-PlayAI
  timeout: 30s
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.Address)
	require.Equal(t, []string{"https://example.org"}, cfg.Origins)
	require.Equal(t, "SPEECH_API_KEY", cfg.Credential.Name())
	require.Equal(t, "Fritz-PlayAI", cfg.Voice)
	require.Equal(t, "mp3", cfg.Format)

}

func TestParseUnknownField(t *testing.T) {
	path := writeConfig(t, `
synthesizer:
  modle: typo
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseInvalidType(t *testing.T) {
	path := writeConfig(t, `
synthesizer:
  type: elevenlabs
`)

	_, err := config.Parse(path)
	require.ErrorContains(t, err, "invalid synthesizer type")
}

func TestEnvCredential(t *testing.T) {
	c := config.EnvCredential("TEST_SPEECH_KEY")

	t.Setenv("TEST_SPEECH_KEY", "")
	require.Empty(t, c.Value())

	t.Setenv("TEST_SPEECH_KEY", "secret")
	require.Equal(t, "secret", c.Value())
}

func TestSynthesizerRequiresToken(t *testing.T) {
	cfg := config.Default()

	_, err := cfg.Synthesizer("")
	require.Error(t, err)

	s, err := cfg.Synthesizer("secret")
	require.NoError(t, err)
	require.NotNil(t, s)
}
