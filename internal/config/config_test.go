package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	rssgerr "github.com/jcerise/rssg/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidFile_ReturnsConfig(t *testing.T) {
	path := writeConfig(t, `site_title: Example Site
base_url: https://example.com/
theme: minimal
content_location: ./posts
output_location: ./public
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Example Site", cfg.SiteTitle)
	require.Equal(t, "https://example.com/", cfg.BaseURL)
	require.Equal(t, "minimal", cfg.Theme)
	require.Equal(t, "./posts", cfg.ContentLocation)
	require.Equal(t, "./public", cfg.OutputLocation)
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Nil(t, cfg)
	require.True(t, rssgerr.IsCategory(err, rssgerr.CategoryConfig))
}

func TestLoad_MalformedYAML_Fails(t *testing.T) {
	path := writeConfig(t, "site_title: \"unterminated\n")

	cfg, err := Load(path)
	require.Error(t, err)
	require.Nil(t, cfg)
	require.True(t, rssgerr.IsCategory(err, rssgerr.CategoryConfig))
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "base_url: https://example.com/\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultSiteTitle, cfg.SiteTitle)
	require.Equal(t, DefaultTheme, cfg.Theme)
	require.Equal(t, DefaultContentLocation, cfg.ContentLocation)
	require.Equal(t, DefaultOutputLocation, cfg.OutputLocation)
	require.Equal(t, DefaultTemplatesLocation, cfg.TemplatesLocation)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("RSSG_TEST_TITLE", "From Environment")
	path := writeConfig(t, "site_title: ${RSSG_TEST_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "From Environment", cfg.SiteTitle)
}

func TestTemplateDir_JoinsLocationAndTheme(t *testing.T) {
	cfg := &Config{TemplatesLocation: "./templates", Theme: "minimal"}
	require.Equal(t, filepath.Join("./templates", "minimal"), cfg.TemplateDir())
}

func TestValidate_SameContentAndOutput_Fails(t *testing.T) {
	cfg := &Config{ContentLocation: "./x", OutputLocation: "./x"}
	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, rssgerr.IsCategory(err, rssgerr.CategoryConfig))
}

func TestInit_ScaffoldsProject(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.yaml")

	require.NoError(t, Init(cfgPath, false))

	for _, p := range []string{
		cfgPath,
		filepath.Join(root, "templates", "default", "template.html"),
		filepath.Join(root, "templates", "default", "index.html"),
		filepath.Join(root, "content", "hello-world.md"),
	} {
		_, err := os.Stat(p)
		require.NoError(t, err, "expected %s to exist", p)
	}
}

func TestInit_ExistingConfigWithoutForce_Fails(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site_title: keep me\n"), 0o644))

	err := Init(cfgPath, false)
	require.Error(t, err)
	require.True(t, rssgerr.IsCategory(err, rssgerr.CategoryConfig))

	data, rerr := os.ReadFile(cfgPath)
	require.NoError(t, rerr)
	require.Contains(t, string(data), "keep me")
}

func TestInit_Force_OverwritesConfig(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site_title: old\n"), 0o644))

	require.NoError(t, Init(cfgPath, true))

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.NotContains(t, string(data), "old")
}
