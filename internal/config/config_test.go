package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakgame/oak/internal/apperrors"
	"github.com/oakgame/oak/internal/game/seat"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
display:
  color: false
  perspective: opponent
  show_deck: false
log:
  dir: /tmp/oak-logs
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.False(t, cfg.Display.Color)
	assert.False(t, cfg.Display.ShowDeck)
	assert.Equal(t, "opponent", cfg.Display.Perspective)
	assert.Equal(t, "/tmp/oak-logs", cfg.Log.Dir)

	p, err := cfg.Display.Player()
	require.NoError(t, err)
	assert.Equal(t, seat.Opponent, p)
}

func TestLoad_DefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "log:\n  dir: logs\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Display.Color)
	assert.True(t, cfg.Display.ShowDeck)
	assert.Equal(t, "user", cfg.Display.Perspective)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestLoad_EmptyPerspective(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "display:\n  perspective: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "user", cfg.Display.Perspective)
}

func TestLoad_InvalidPerspective(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "display:\n  perspective: dummy\n")

	cfg, err := Load(path)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "display: [unclosed")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestPlayer_CaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected seat.PlayerName
	}{
		{"user", seat.User},
		{"User", seat.User},
		{"OPPONENT", seat.Opponent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			d := DisplayConfig{Perspective: tt.input}
			p, err := d.Player()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, "user", cfg.Display.Perspective)
	assert.Empty(t, cfg.Log.Dir)
}
