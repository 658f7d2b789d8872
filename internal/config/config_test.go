package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetFixturePath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				FixturePath: "tests",
				Flags:       Flags{},
			},
			expected: "tests",
		},
		{
			name: "with fixture path flag",
			config: &Config{
				ProjectPath: "/project",
				FixturePath: "tests",
				Flags: Flags{
					FixturePath: "hw01",
				},
			},
			expected: "/project/hw01",
		},
		{
			name: "absolute fixture path flag",
			config: &Config{
				ProjectPath: "/project",
				FixturePath: "tests",
				Flags: Flags{
					FixturePath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
		{
			name: "absolute configured path",
			config: &Config{
				ProjectPath: "/project",
				FixturePath: "/srv/fixtures",
			},
			expected: "/srv/fixtures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetFixturePath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := New()
	cfg.Database.Password = "secret"

	expected := "root:secret@tcp(127.0.0.1:3306)/okc?parseTime=true"
	if dsn := cfg.GetDSN(); dsn != expected {
		t.Errorf("expected %s, got %s", expected, dsn)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if cfg.Database.Table != DefaultDBTable {
		t.Errorf("expected table %s, got %s", DefaultDBTable, cfg.Database.Table)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()

	cfg.ApplyFlags(Flags{Workers: 8, NameFilter: "*hw*"})
	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.Flags.NameFilter != "*hw*" {
		t.Errorf("expected filter to be stored, got %q", cfg.Flags.NameFilter)
	}

	cfg.ApplyFlags(Flags{})
	if cfg.Workers != 8 {
		t.Errorf("expected zero flag to keep 8 workers, got %d", cfg.Workers)
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	env := "OKC_DB_HOST=db.internal\nOKC_DB_TABLE=fixtures\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(env), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// Variables set in the environment win over the file.
	t.Setenv("OKC_DB_TABLE", "from_env")
	t.Setenv("OKC_DB_HOST", "")
	os.Unsetenv("OKC_DB_HOST")

	cfg := New()
	cfg.ProjectPath = dir
	cfg.LoadEnv()

	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected host from env file, got %s", cfg.Database.Host)
	}
	if cfg.Database.Table != "from_env" {
		t.Errorf("expected table from environment, got %s", cfg.Database.Table)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("expected default port, got %s", cfg.Database.Port)
	}
}
