package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("procview", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	v, err := NewViper(fs)
	require.NoError(t, err)
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Interactive())
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "--interval=250ms", "--proc-root=/host/proc", "-o", "JSON", "--limit=15", "--log-level=debug")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, "/host/proc", cfg.ProcRoot)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 15, cfg.Limit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Interactive())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PROCVIEW_PROC_ROOT", "/rootfs/proc")
	t.Setenv("PROCVIEW_LIMIT", "7")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "/rootfs/proc", cfg.ProcRoot)
	assert.Equal(t, 7, cfg.Limit)

	cfg, err = load(t, "--limit=3")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limit, "flags override the environment")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 5s\npasswd: /srv/passwd\noutput: yaml\n"), 0o600))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, "/srv/passwd", cfg.Passwd)
	assert.Equal(t, "yaml", cfg.Output)

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][]string{
		"zeroInterval":  {"--interval=0s"},
		"emptyProcRoot": {"--proc-root="},
		"unknownOutput": {"--output=xml"},
		"negativeLimit": {"--limit=-1"},
		"badLogLevel":   {"--log-level=loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, args...)
			require.Error(t, err)
		})
	}
}
