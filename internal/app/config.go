package app

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"os"
	"strings"
)

// EnvPrefix - Prefix of the environment variables read into Config
const EnvPrefix = "BOOKSHELF"

// Config holds the application configuration loaded from config files,
// environment variables, .env files and defaults.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	SeedFile             string
	SampleBooks          bool
	InitialCapacity      int64
	CollisionTechnique   string
	DefaultSortField     string
	DefaultSortAlgorithm string
	AdminPassword        string

	// Logging configuration, LogLevel comes from the environment or the
	// config file while LogLevelFlag holds an explicit --log-level
	LogLevel     string
	LogLevelFlag string
	LogFormat    string
	LogOutput    string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (BOOKSHELF_ prefixed, LOG_* also unprefixed)
// 3. .env files
// 4. Config file (configFile if given, else ~/.bookshelf.yaml or ./.bookshelf.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for _, key := range []string{"log_level", "log_format", "log_output"} {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key), strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".bookshelf")

		// A missing config file is fine, a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		SeedFile:             v.GetString("seed_file"),
		SampleBooks:          v.GetBool("sample_books"),
		InitialCapacity:      v.GetInt64("initial_capacity"),
		CollisionTechnique:   v.GetString("collision_technique"),
		DefaultSortField:     v.GetString("default_sort_field"),
		DefaultSortAlgorithm: v.GetString("default_sort_algorithm"),
		AdminPassword:        v.GetString("admin_password"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// setDefaults sets the default of every configuration key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("format", "")
	v.SetDefault("seed_file", "")
	v.SetDefault("sample_books", true)
	v.SetDefault("initial_capacity", 16)
	v.SetDefault("collision_technique", "chaining")
	v.SetDefault("default_sort_field", "title")
	v.SetDefault("default_sort_algorithm", "merge")
	v.SetDefault("admin_password", "")
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Flags holds the values of the global command-line flags.
type Flags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
	Format     string
	LogLevel   string
	SeedFile   string
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags Flags) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevelFlag = flags.LogLevel
	}
	if flags.SeedFile != "" {
		c.SeedFile = flags.SeedFile
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
