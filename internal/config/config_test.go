package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
		require.NoError(t, err)
		require.Equal(t, "205", cfg.GetAccentColor())
		require.Equal(t, "240", cfg.GetDimColor())
		require.True(t, cfg.GetShowHelp())
		require.Empty(t, cfg.GetLogFile())
	})

	t.Run("reads values from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		err := os.WriteFile(path, []byte(`{"accentColor":"39","showHelp":false,"logFile":"/tmp/menukit.log"}`), 0600)
		require.NoError(t, err)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "39", cfg.GetAccentColor())
		require.Equal(t, "240", cfg.GetDimColor(), "unset field falls back to default")
		require.False(t, cfg.GetShowHelp())
		require.Equal(t, "/tmp/menukit.log", cfg.GetLogFile())
	})

	t.Run("rejects malformed config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		err := os.WriteFile(path, []byte("{not json"), 0600)
		require.NoError(t, err)

		_, err = Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})
}
