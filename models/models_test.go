package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SUMMARIZER_API_URL", "SUMMARIZER_DOWNLOAD_DIR", "SUMMARIZER_LOG_FILE",
		"SUMMARIZER_LANGUAGE", "SUMMARIZER_TIMEOUT", "SUMMARIZER_FORMAT", "SUMMARIZER_LENGTH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "summarizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: http://backend:8080/api
timeout: 5s
defaults:
  format: academic
  length: 1
`), 0644))
	t.Setenv("SUMMARIZER_LANGUAGE", "de")
	t.Setenv("SUMMARIZER_TIMEOUT", "90s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8080/api", cfg.APIURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, FormatAcademic, cfg.Defaults.Format)
	assert.Equal(t, LengthShort, cfg.Defaults.Length)
	assert.Equal(t, "de", cfg.Defaults.Language)
	assert.Equal(t, DefaultDownloadDir, cfg.DownloadDir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "summarizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  length: 7\n"), 0644))

	_, err := LoadConfig(path)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "defaults.length", cfgErr.Field)
}

func TestLoadConfig_NormalizesFormat(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SUMMARIZER_FORMAT", "Bullet_Points")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, FormatBulletPoints, cfg.Defaults.Format)
	})

	t.Run("yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "summarizer.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaults:\n  format: ONE_LINER\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, FormatOneLiner, cfg.Defaults.Format)
	})
}

func TestLoadConfig_EnvLength(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMMARIZER_LENGTH", "long")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LengthLong, cfg.Defaults.Length)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{key: "SUMMARIZER_TIMEOUT", value: "soon"},
		{key: "SUMMARIZER_LENGTH", value: "huge"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.key, cfgErr.Field)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatParagraph},
		{in: "Bullet_Points", want: FormatBulletPoints},
		{in: "one_liner", want: FormatOneLiner},
		{in: "haiku", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "", want: LengthMedium},
		{in: "1", want: LengthShort},
		{in: "long", want: LengthLong},
		{in: "4", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSummaryRequest_Input(t *testing.T) {
	assert.False(t, SummaryRequest{}.HasInput())
	assert.True(t, SummaryRequest{Text: "x"}.HasInput())

	withFile := SummaryRequest{Text: "x", File: &FileInput{Name: "a.txt"}}
	assert.True(t, withFile.HasInput())
	assert.True(t, withFile.UsesFile())
}
