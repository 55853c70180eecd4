// Package app wires configuration, logging and the catalog together behind
// the bookshelf command line.
package app

import (
	"fmt"
	"github.com/gostonefire/bookshelf/catalog"
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/sorts"
	"github.com/rs/zerolog"
	"io"
	"os"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	config *Config
	flags  Flags
	logger *zerolog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Catalog instance, built on first use
	catalog *catalog.Catalog
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and the default config file
// locations, options may replace any part of it.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	app.config = config

	logger := NewLogger(config, app.errOut)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Catalog returns the catalog, creating and seeding it on first use.
// A configured seed file is imported, otherwise the sample books are loaded
// unless sample_books is off.
func (a *App) Catalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	technique, err := crt.Parse(a.config.CollisionTechnique)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(catalog.Options{
		InitialCapacity:              a.config.InitialCapacity,
		CollisionResolutionTechnique: technique,
		AdminPassword:                a.config.AdminPassword,
		Logger:                       a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}

	var seed *catalog.Seed
	switch {
	case a.config.SeedFile != "":
		seed, err = catalog.ReadSeedFile(a.config.SeedFile)
	case a.config.SampleBooks:
		seed, err = catalog.SampleSeed()
	}
	if err != nil {
		return nil, fmt.Errorf("loading seed: %w", err)
	}
	if seed != nil {
		added, err := c.Import(seed)
		if err != nil {
			return nil, fmt.Errorf("importing seed: %w", err)
		}
		a.logger.Info().Int("books", added).Str("seed", a.seedName()).Msg("catalog seeded")
	}

	a.catalog = c
	return c, nil
}

// SortDefaults returns the configured default sort field and algorithm.
// An unset field orders by title, an unknown algorithm falls back to the
// builtin sort with a warning.
func (a *App) SortDefaults() (catalog.Field, sorts.Algorithm, error) {
	field := catalog.ByTitle
	if a.config.DefaultSortField != "" {
		var err error
		if field, err = catalog.ParseField(a.config.DefaultSortField); err != nil {
			return 0, 0, fmt.Errorf("default_sort_field: %w", err)
		}
	}

	algorithm, err := sorts.ParseAlgorithm(a.config.DefaultSortAlgorithm)
	if err != nil {
		a.logger.Warn().Err(err).Msg("default_sort_algorithm")
	}

	return field, algorithm, nil
}

func (a *App) seedName() string {
	if a.config.SeedFile != "" {
		return a.config.SeedFile
	}
	return "sample"
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithIO sets the streams used instead of stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		a.errOut = errOut
		return nil
	}
}

// WithCatalog sets a prepared catalog (useful for testing).
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) error {
		a.catalog = c
		return nil
	}
}
