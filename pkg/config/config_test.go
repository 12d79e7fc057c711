package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnkore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnkore"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnkore", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnkore", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// API defaults
		assert.Equal(t, "https://www.ebi.ac.uk/ena/portal/api/",
			cfg.API.ENAPortalURL)
		assert.Equal(t, "https://www.ebi.ac.uk/ena/browser/api/",
			cfg.API.ENABrowserURL)
		assert.Equal(t, "https://api.ncbi.nlm.nih.gov/datasets/v2/",
			cfg.API.DatasetsURL)
		assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
			cfg.API.EutilsURL)
		assert.Equal(t, "https://api.gbif.org/v1/", cfg.API.GBIFURL)
		assert.Empty(t, cfg.API.EntrezAPIKey)
		assert.Empty(t, cfg.API.EntrezEmail)
		assert.Equal(t, 60, cfg.API.Timeout)

		// Process defaults
		assert.Equal(t, 40, cfg.Process.SearchLimit)
		assert.False(t, cfg.Process.KeepGoing)
		assert.Equal(t, "text", cfg.Process.Format)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, 1, cfg.JobsNumber)
	})
}

func TestOptionURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid URL",
			input:    "http://localhost:8080/api/",
			expected: "http://localhost:8080/api/",
		},
		{
			name:     "adds trailing slash",
			input:    "http://localhost:8080/api",
			expected: "http://localhost:8080/api/",
		},
		{
			name:     "trims whitespace",
			input:    "  https://example.org/v1  ",
			expected: "https://example.org/v1/",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "https://api.gbif.org/v1/",
		},
		{
			name:     "ignores URL without scheme",
			input:    "example.org/v1",
			expected: "https://api.gbif.org/v1/",
		},
		{
			name:     "ignores non-http scheme",
			input:    "ftp://example.org/v1",
			expected: "https://api.gbif.org/v1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptGBIFURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.GBIFURL)
		})
	}
}

func TestOptionEntrezEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid email",
			input:    "me@example.org",
			expected: "me@example.org",
		},
		{
			name:     "trims whitespace",
			input:    " me@example.org ",
			expected: "me@example.org",
		},
		{
			name:     "ignores missing at sign",
			input:    "me.example.org",
			expected: "",
		},
		{
			name:     "ignores empty local part",
			input:    "@example.org",
			expected: "",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptEntrezEmail(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.EntrezEmail)
		})
	}
}

func TestOptionTimeout(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid timeout",
			input:    10,
			expected: 10,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 60,
		},
		{
			name:     "ignores negative",
			input:    -1,
			expected: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTimeout(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.Timeout)
		})
	}
}

func TestOptionFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets pretty", "pretty", "pretty"},
		{"sets compact", "compact", "compact"},
		{"sets yaml", "yaml", "yaml"},
		{"sets csv", "csv", "csv"},
		{"sets tsv", "tsv", "tsv"},
		{"normalizes to lowercase", "YAML", "yaml"},
		{"ignores invalid value", "docx", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptFormat(tt.input)})
			assert.Equal(t, tt.expected, cfg.Process.Format)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - warn",
			input:    "warn",
			expected: "warn",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets stderr", "stderr", "stderr"},
		{"sets stdout", "stdout", "stdout"},
		{"ignores invalid value", "syslog", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogDestination(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid jobs number",
			input:    8,
			expected: 8,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 1,
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptJobsNumber(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptEntrezAPIKey("abc123"),
			config.OptSearchLimit(100),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(4),
			config.OptKeepGoing(true),
		}

		cfg.Update(opts)

		assert.Equal(t, "abc123", cfg.API.EntrezAPIKey)
		assert.Equal(t, 100, cfg.Process.SearchLimit)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 4, cfg.JobsNumber)
		assert.True(t, cfg.Process.KeepGoing)

		// Unchanged fields keep defaults
		assert.Equal(t, 60, cfg.API.Timeout)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptEntrezAPIKey("first"),
			config.OptEntrezAPIKey("second"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second", cfg.API.EntrezAPIKey)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptENAPortalURL("http://localhost:1/portal/"),
			config.OptENABrowserURL("http://localhost:1/browser/"),
			config.OptDatasetsURL("http://localhost:1/datasets/"),
			config.OptEutilsURL("http://localhost:1/eutils/"),
			config.OptGBIFURL("http://localhost:1/gbif/"),
			config.OptEntrezAPIKey("key"),
			config.OptEntrezEmail("me@example.org"),
			config.OptTimeout(5),
			config.OptSearchLimit(7),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(3),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.API, newCfg.API)
		assert.Equal(t, original.Process.SearchLimit,
			newCfg.Process.SearchLimit)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptKeepGoing(true),
			config.OptFormat("yaml"),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Empty(t, newCfg.HomeDir)
		assert.False(t, newCfg.Process.KeepGoing)
		assert.Equal(t, "text", newCfg.Process.Format)
	})
}
