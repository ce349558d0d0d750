package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Indexing IndexingConfig `yaml:"indexing"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// IndexingConfig holds vocabulary indexing settings.
type IndexingConfig struct {
	// MaxTextLength caps the length of content texts accepted for indexing.
	MaxTextLength int `yaml:"max_text_length"    env:"INDEXING_MAX_TEXT_LENGTH"   env-default:"200000"`
	// ReindexChunkSize is how many content items a reindex run processes per chunk.
	ReindexChunkSize int `yaml:"reindex_chunk_size" env:"INDEXING_REINDEX_CHUNK_SIZE" env-default:"100"`
	// SupportedLanguagesRaw is a comma-separated list of language codes the
	// seed-languages command marks as supported.
	SupportedLanguagesRaw string `yaml:"supported_languages" env:"INDEXING_SUPPORTED_LANGUAGES" env-default:"en,es,fr,de,it,pt,nl,sv,ja"`

	// SupportedLanguages is parsed from SupportedLanguagesRaw during validation.
	SupportedLanguages []string `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
