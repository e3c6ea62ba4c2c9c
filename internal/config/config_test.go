package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 0.5, cfg.Prompt.MinConfidence)
	assert.Equal(t, 10, cfg.Transcript.MaxActions)
	assert.Equal(t, 0.5, cfg.Records.Threshold)
	assert.Equal(t, 100, cfg.Records.MaxFieldLength)
	assert.Equal(t, 4.0, cfg.Tokens.CharsPerToken)
	require.NoError(t, cfg.Validate())
}

func TestLoadBytes(t *testing.T) {
	yaml := []byte(`
language: es
prompt:
  min_confidence: 0.7
records:
  required: [id, name]
  threshold: 0.6
  format: toon
tokens:
  chars_per_token: 3.5
`)
	cfg, err := LoadBytes(yaml)
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 0.7, cfg.Prompt.MinConfidence)
	assert.Equal(t, []string{"id", "name"}, cfg.Records.Required)
	assert.Equal(t, 0.6, cfg.Records.Threshold)
	assert.Equal(t, RecordsFormatToon, cfg.Records.Format)
	assert.Equal(t, 3.5, cfg.Tokens.CharsPerToken)

	// Unset fields still receive defaults.
	assert.Equal(t, 10, cfg.Transcript.MaxActions)
	assert.Equal(t, 100, cfg.Records.MaxFieldLength)
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	_, err := LoadBytes([]byte("language: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestLoadBytes_UnsupportedLanguage(t *testing.T) {
	_, err := LoadBytes([]byte("language: fr"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fr"`)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sempress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: en\nrecords:\n  threshold: 0.3\n"), 0o600))

	t.Setenv("SEMPRESS_RECORDS_THRESHOLD", "0.8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Records.Threshold, "environment wins over file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/sempress.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EncodingConfiguration)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*EncodingConfiguration) {},
			wantErr: "",
		},
		{
			name:    "unsupported language",
			mutate:  func(c *EncodingConfiguration) { c.Language = "de" },
			wantErr: "not fully supported",
		},
		{
			name:    "min_confidence above one",
			mutate:  func(c *EncodingConfiguration) { c.Prompt.MinConfidence = 1.5 },
			wantErr: "min_confidence",
		},
		{
			name:    "negative threshold",
			mutate:  func(c *EncodingConfiguration) { c.Records.Threshold = -0.1 },
			wantErr: "records.threshold",
		},
		{
			name:    "negative field length",
			mutate:  func(c *EncodingConfiguration) { c.Records.MaxFieldLength = -1 },
			wantErr: "max_field_length",
		},
		{
			name:    "unknown records format",
			mutate:  func(c *EncodingConfiguration) { c.Records.Format = "csv" },
			wantErr: "records.format",
		},
		{
			name:    "negative max actions",
			mutate:  func(c *EncodingConfiguration) { c.Transcript.MaxActions = -2 },
			wantErr: "max_actions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
