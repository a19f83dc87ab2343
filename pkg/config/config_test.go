package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"arraypointer/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, "  ", cfg.Delimiter)
	require.Equal(t, 1, cfg.Precision)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
precision: 3
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Precision)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "logfmt", cfg.Log.Format, "unset fields keep their defaults")
	require.Equal(t, "  ", cfg.Delimiter)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "empty document", yaml: ""},
		{name: "custom delimiter", yaml: "delimiter: \", \"\n"},
		{name: "unknown field", yaml: "colour: red\n", wantErr: "field colour not found"},
		{name: "negative precision", yaml: "precision: -1\n", wantErr: "precision must not be negative"},
		{name: "bad level", yaml: "log:\n  level: loud\n", wantErr: `unknown log level "loud"`},
		{name: "bad format", yaml: "log:\n  format: xml\n", wantErr: `unknown log format "xml"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			err := config.Parse([]byte(tc.yaml), &cfg)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
