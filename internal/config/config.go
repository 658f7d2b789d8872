package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	FixturePath string

	// Execution settings
	Workers int

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Catalog database settings
	Database Database

	// Command flags
	Flags Flags
}

// Database holds the catalog database connection settings
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Table    string
}

// Flags holds command-line flags
type Flags struct {
	Workers     int
	FixturePath string
	NameFilter  string
	TestFilter  string
	ShowCases   bool
	FailFast    bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		FixturePath: DefaultFixturePath,
		Workers:     DefaultWorkers,
		Database: Database{
			Host:  DefaultDBHost,
			Port:  DefaultDBPort,
			User:  DefaultDBUser,
			Name:  DefaultDBName,
			Table: DefaultDBTable,
		},
		Flags: Flags{Workers: DefaultWorkers},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// ApplyFlags stores flags on the config and applies their overrides
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

// LoadEnv reads OKC_* settings from the environment, after loading the
// project's env file when one exists. Variables already set win over the file.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	setFromEnv(&c.FixturePath, "OKC_FIXTURE_PATH")
	setFromEnv(&c.Database.Host, "OKC_DB_HOST")
	setFromEnv(&c.Database.Port, "OKC_DB_PORT")
	setFromEnv(&c.Database.User, "OKC_DB_USERNAME")
	setFromEnv(&c.Database.Password, "OKC_DB_PASSWORD")
	setFromEnv(&c.Database.Name, "OKC_DB_DATABASE")
	setFromEnv(&c.Database.Table, "OKC_DB_TABLE")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// GetFixturePath returns the fixture path, using flag if provided
func (c *Config) GetFixturePath() string {
	if c.Flags.FixturePath != "" {
		// If FixturePath is provided, make it relative to ProjectPath if it's not absolute
		if filepath.IsAbs(c.Flags.FixturePath) {
			return c.Flags.FixturePath
		}
		return filepath.Join(c.ProjectPath, c.Flags.FixturePath)
	}

	if filepath.IsAbs(c.FixturePath) {
		return c.FixturePath
	}
	return filepath.Join(c.ProjectPath, c.FixturePath)
}

// GetDSN returns the MySQL data source name of the catalog database
func (c *Config) GetDSN() string {
	db := c.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", db.User, db.Password, db.Host, db.Port, db.Name)
}
