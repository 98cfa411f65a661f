// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: newConfig("info", FormatText, LocaleRU, 0),
		},
		{
			name:    "file",
			content: "log:\n  level: debug\n  format: json\nlocale: en\nbatch:\n  workers: 4\n",
			want:    newConfig("debug", FormatJSON, LocaleEN, 4),
		},
		{
			name:    "env overrides file",
			content: "locale: en\nbatch:\n  workers: 4\n",
			env:     map[string]string{"TALLY_LOCALE": "ru", "TALLY_WORKERS": "2", "TALLY_LOG_LEVEL": "warn"},
			want:    newConfig("warn", FormatText, LocaleRU, 2),
		},
		{
			name:    "bad env workers",
			env:     map[string]string{"TALLY_WORKERS": "many"},
			wantErr: true,
		},
		{
			name:    "bad yaml",
			content: "log: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"TALLY_LOG_LEVEL", "TALLY_LOG_FORMAT", "TALLY_LOCALE", "TALLY_WORKERS"} {
				t.Setenv(key, tt.env[key])
			}

			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}

			got, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("Load() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: newConfig("info", FormatJSON, LocaleEN, 1)},
		{name: "bad format", cfg: newConfig("info", "xml", LocaleEN, 1), wantErr: ErrInvalidConfig},
		{name: "bad locale", cfg: newConfig("info", FormatText, "de", 1), wantErr: ErrInvalidConfig},
		{name: "negative workers", cfg: newConfig("info", FormatText, LocaleRU, -1), wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func newConfig(level, format, locale string, workers int) (c Config) {
	c.Log.Level = level
	c.Log.Format = format
	c.Locale = locale
	c.Batch.Workers = workers

	return
}
