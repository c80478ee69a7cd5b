package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/proxnet/cmd/proxnet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proxnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROXNET_CONFIG", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeYAML(t, `
threshold: 50
id: ID
coords: [X, Y]
timegroup: timegroup
split_by: [herd]
format: table
parallelism: 4
`)
	t.Setenv("PROXNET_CONFIG", path)
	t.Setenv("PROXNET_THRESHOLD", "75")
	t.Setenv("PROXNET_SPLIT_BY", "herd, sex")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.Threshold, "env beats file")
	assert.Equal(t, "ID", cfg.ID)
	assert.Equal(t, []string{"X", "Y"}, cfg.Coords)
	assert.Equal(t, []string{"herd", "sex"}, cfg.SplitBy)
	assert.Equal(t, config.FormatTable, cfg.Format)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.True(t, cfg.FillNA, "default survives")
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	t.Setenv("PROXNET_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	path := writeYAML(t, "id: animal\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "animal", cfg.ID)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("PROXNET_CONFIG", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, config.ErrLoadConfig)

	cases := map[string]string{
		"format":    "format: xml\n",
		"log level": "log_level: loud\n",
		"delimiter": "delimiter: ';;'\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(writeYAML(t, body))
			require.NoError(t, err, "Load leaves validation to the caller")
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
