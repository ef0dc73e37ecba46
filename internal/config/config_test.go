package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMenuSource, EnvBaseURL, EnvOutputFormat, EnvOutputPath, EnvContentDir, EnvDebounce} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "docnav.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "integrations", cfg.Menu.Name)
	require.Equal(t, "/docs/integrations", cfg.Menu.BaseURL)
	require.Equal(t, "meta", cfg.Output.Format)
	require.Equal(t, "pages/docs/integrations", cfg.Lint.ContentDir)
	require.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
menu:
  name: sdks
  source: sdks.yaml
output:
  format: hugo
  path: config/_default/menus.yaml
watch:
  debounce: 2s
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sdks", cfg.Menu.Name)
	require.Equal(t, "sdks.yaml", cfg.Menu.Source)
	require.Equal(t, "/docs/sdks", cfg.Menu.BaseURL)
	require.Equal(t, "hugo", cfg.Output.Format)
	require.Equal(t, "config/_default/menus.yaml", cfg.Output.Path)
	require.Equal(t, "pages/docs/sdks", cfg.Lint.ContentDir)
	require.Equal(t, 2*time.Second, cfg.Watch.Debounce)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutputFormat, "markdown")
	t.Setenv(EnvBaseURL, "/guides")
	t.Setenv(EnvContentDir, "content/guides")
	t.Setenv(EnvDebounce, "50ms")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	require.Equal(t, "markdown", cfg.Output.Format)
	require.Equal(t, "/guides", cfg.Menu.BaseURL)
	require.Equal(t, "content/guides", cfg.Lint.ContentDir)
	require.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte(EnvOutputFormat+"=text\n"), 0o600))
	// godotenv sets variables through os.Setenv; restore afterwards.
	t.Cleanup(func() { _ = os.Unsetenv(EnvOutputFormat) })
	require.NoError(t, os.Unsetenv(EnvOutputFormat))

	cfg, err := Load(filepath.Join(dir, "docnav.yaml"))
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("menu: [oops\n"), 0o600))
	_, err := Load(bad)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	format := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(format, []byte("output:\n  format: toml\n"), 0o600))
	_, err = Load(format)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	dirSource := filepath.Join(dir, "dirsource.yaml")
	require.NoError(t, os.WriteFile(dirSource, []byte("menu:\n  source: "+dir+"\n"), 0o600))
	_, err = Load(dirSource)
	require.Error(t, err)
}
