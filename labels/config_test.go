package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplateID, cfg.TemplateID)
	assert.Equal(t, "pdf", cfg.OutputDir)
	assert.Equal(t, DefaultRecipientName, cfg.DefaultRecipient)
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Config{
		TemplateID:       "10-up",
		OutputDir:        "out",
		DefaultRecipient: "Valued Neighbor",
	}
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigRejectsUnknownTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"templateId":"80-up"}`), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "80-up")
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	orig := Config{TemplateID: "30-up", OutputDir: "pdf", DefaultRecipient: "X"}
	dup := orig.Clone()
	dup.TemplateID = "10-up"
	assert.Equal(t, "30-up", orig.TemplateID)
}
