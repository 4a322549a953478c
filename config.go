package weba

import (
	"io/fs"
	"log/slog"
)

// Config controls how markup is parsed and how component templates are
// loaded.
type Config struct {
	// Logger is the structured logger used for template loading and
	// lifecycle tracing. If nil, slog.Default() is used.
	Logger *slog.Logger

	// FS resolves template paths. If nil, paths are read from disk relative
	// to the source file that defined the component.
	FS fs.FS

	// Parser selects how markup is parsed. Default: ModeAuto.
	Parser ParserMode

	// DisableCache forces templates to be read and parsed on every build.
	// Useful while editing template files in development.
	DisableCache bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
		Parser: ModeAuto,
	}
}

// Option configures parsing and component definitions.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithFS resolves template paths inside fsys (for example an embed.FS).
func WithFS(fsys fs.FS) Option {
	return func(c *Config) {
		c.FS = fsys
	}
}

// WithParser selects the parser mode.
func WithParser(mode ParserMode) Option {
	return func(c *Config) {
		c.Parser = mode
	}
}

// WithoutCache disables the template cache.
func WithoutCache() Option {
	return func(c *Config) {
		c.DisableCache = true
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
