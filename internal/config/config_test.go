package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		expected  Config
		expectErr bool
	}{
		{
			name: "no environment",
			env:  map[string]string{},
			expected: Config{
				Stage:                  StageDev,
				Port:                   9191,
				BoardWidth:             10,
				BoardHeight:            10,
				SessionCleanupInterval: 20 * time.Minute,
			},
		},
		{
			name: "defaults",
			env:  map[string]string{"STAGE": "dev"},
			expected: Config{
				Stage:                  StageDev,
				Port:                   9191,
				BoardWidth:             10,
				BoardHeight:            10,
				SessionCleanupInterval: 20 * time.Minute,
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"STAGE":                    "dev",
				"PORT":                     "7171",
				"DATABASE_URL":             "postgres://localhost/battleship",
				"BOARD_WIDTH":              "12",
				"BOARD_HEIGHT":             "8",
				"SESSION_CLEANUP_INTERVAL": "5m",
				"ALLOWED_ORIGINS":          "https://a.example,https://b.example",
			},
			expected: Config{
				Stage:                  StageDev,
				Port:                   7171,
				DatabaseURL:            "postgres://localhost/battleship",
				BoardWidth:             12,
				BoardHeight:            8,
				SessionCleanupInterval: 5 * time.Minute,
				AllowedOrigins:         []string{"https://a.example", "https://b.example"},
			},
		},
		{
			name:      "invalid stage",
			env:       map[string]string{"STAGE": "staging"},
			expectErr: true,
		},
		{
			name:      "invalid board size",
			env:       map[string]string{"STAGE": "dev", "BOARD_WIDTH": "0"},
			expectErr: true,
		},
		{
			name:      "port not a number",
			env:       map[string]string{"STAGE": "dev", "PORT": "abc"},
			expectErr: true,
		},
	}

	keys := []string{"STAGE", "PORT", "DATABASE_URL", "BOARD_WIDTH", "BOARD_HEIGHT", "SESSION_CLEANUP_INTERVAL", "ALLOWED_ORIGINS"}
	missingEnvFile := filepath.Join(t.TempDir(), ".env")

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, key := range keys {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, value := range test.env {
				t.Setenv(key, value)
			}

			cfg, err := Load(missingEnvFile)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(cfg, test.expected) {
				t.Fatalf("expected: %+v\tgot: %+v", test.expected, cfg)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("STAGE", "")
	os.Unsetenv("STAGE")
	t.Setenv("BOARD_WIDTH", "")
	os.Unsetenv("BOARD_WIDTH")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("STAGE=dev\nBOARD_WIDTH=6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("STAGE")
		os.Unsetenv("BOARD_WIDTH")
	})

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardWidth != 6 {
		t.Fatalf("expected board width: %d\tgot: %d", 6, cfg.BoardWidth)
	}
	if cfg.AnalyticsEnabled() {
		t.Fatal("analytics must be disabled without DATABASE_URL")
	}
}
