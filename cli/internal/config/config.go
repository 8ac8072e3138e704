// Package config loads CLI settings from config files, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem every CLI read and write goes through.
var AppFs = afero.NewOsFs()

const (
	configName = ".pslcheck"
	envPrefix  = "PSLCHECK"

	// FormatPretty prints annotated source snippets.
	FormatPretty = "pretty"
	// FormatJSON prints a machine readable report.
	FormatJSON = "json"
)

// Config holds the application configuration
type Config struct {
	SchemaPath      string
	Parallelism     int
	Format          string
	Debug           bool
	RequiredVersion string
	// Dir is the project directory the configuration was loaded for.
	Dir string
	// File is the config file that was read, empty when none was found.
	File string
}

// ResolvedSchemaPath returns SchemaPath relative to the project directory.
func (c *Config) ResolvedSchemaPath() string {
	if filepath.IsAbs(c.SchemaPath) || c.Dir == "" {
		return c.SchemaPath
	}
	return filepath.Join(c.Dir, c.SchemaPath)
}

// Load reads the configuration for a project directory. Sources, highest
// priority first: PSLCHECK_* environment variables, .env.local, .env, a
// .pslcheck.yaml in dir, then one in the home directory.
func Load(dir string) (*Config, error) {
	v := newViper()

	v.AddConfigPath(dir)
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "pslcheck"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// .env.local overrides .env
	for _, name := range []string{".env", ".env.local"} {
		if err := loadEnvFile(v, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		SchemaPath:      v.GetString("schema_path"),
		Parallelism:     v.GetInt("parallelism"),
		Format:          strings.ToLower(v.GetString("format")),
		Debug:           v.GetBool("debug"),
		RequiredVersion: v.GetString("required_version"),
		Dir:             dir,
		File:            v.ConfigFileUsed(),
	}
	if cfg.Format != FormatPretty && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return cfg, nil
}

// Save writes the configuration to .pslcheck.yaml in dir.
func Save(dir string, cfg *Config) error {
	v := newViper()
	v.Set("schema_path", cfg.SchemaPath)
	v.Set("parallelism", cfg.Parallelism)
	v.Set("format", cfg.Format)
	v.Set("debug", cfg.Debug)
	if cfg.RequiredVersion != "" {
		v.Set("required_version", cfg.RequiredVersion)
	}

	if err := AppFs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return v.WriteConfigAs(filepath.Join(dir, configName+".yaml"))
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("schema_path", "schema.prisma")
	v.SetDefault("parallelism", 1)
	v.SetDefault("format", FormatPretty)
	v.SetDefault("debug", false)
	v.SetDefault("required_version", "")
	return v
}

// loadEnvFile applies PSLCHECK_* entries of a dotenv file. Variables already
// set in the process environment win.
func loadEnvFile(v *viper.Viper, path string) error {
	f, err := AppFs.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for key, value := range values {
		if !strings.HasPrefix(key, envPrefix+"_") {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		v.Set(strings.ToLower(strings.TrimPrefix(key, envPrefix+"_")), value)
	}
	return nil
}
