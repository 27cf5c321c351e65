package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
tab_stop: 4
quit_times: 0
status_timeout: 2s
backend: tcell
log_level: debug
profiles:
  - name: make
    filematch: ["Makefile", "*.mk"]
    comment: "#"
    keywords: [ifeq, endif]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.TabStop)
	assert.Equal(t, 0, cfg.QuitTimes)
	assert.Equal(t, 2*time.Second, cfg.StatusTimeout)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, []string{"ifeq", "endif"}, cfg.Profiles[0].Keywords)

	p := cfg.Registry().Match("rules.mk")
	require.NotNil(t, p)
	assert.Equal(t, "make", p.Name())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "tab_stop: 2\n"))
	require.NoError(t, err)

	want := Default()
	want.TabStop = 2
	assert.Equal(t, want, *cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "tab_stop: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config file")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "tab_stop: 0\nbackend: vt100\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.NotEmpty(t, fieldErrs)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{name: "tab stop too small", modify: func(c *Config) { c.TabStop = 0 }, field: "tab_stop"},
		{name: "tab stop too large", modify: func(c *Config) { c.TabStop = 33 }, field: "tab_stop"},
		{name: "negative quit times", modify: func(c *Config) { c.QuitTimes = -1 }, field: "quit_times"},
		{name: "zero timeout", modify: func(c *Config) { c.StatusTimeout = 0 }, field: "status_timeout"},
		{name: "unknown backend", modify: func(c *Config) { c.Backend = "curses" }, field: "backend"},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "loud" }, field: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestValidate_Default(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}
