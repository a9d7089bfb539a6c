package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DataDir holds the CSV table files; DocumentDir the uploaded documents.
	DataDir     string `env:"DATA_DIR,     default=./data"`
	DocumentDir string `env:"DOCUMENT_DIR, default=./documents"`

	// AuditTimeFormat is the operator-facing display layout for login/logout
	// timestamps. Storage always uses a fixed sortable layout; this only
	// affects API responses.
	AuditTimeFormat  string `env:"AUDIT_TIME_FORMAT, default=2006-01-02 15:04:05"`
	SpreadsheetLimit int    `env:"SPREADSHEET_LIMIT, default=30"`

	SMTP  SMTPConfig
	Redis RedisConfig
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST,   default=localhost"`
	Port     int    `env:"SMTP_PORT,   default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM,   default=noreply@jobgenix.local"`
	Domain   string `env:"SMTP_DOMAIN, default=jobgenix.local"`
}

// RedisConfig is optional: an empty Addr disables notification dedup.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
