package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration of the numerals server and CLI.
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Log    LogConfig    `yaml:"log"`
	Parse  ParseConfig  `yaml:"parse"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps the size of a batch request body.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"1048576"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CORSConfig holds CORS settings. List values are comma separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ParseConfig holds the defaults applied when a request does not say
// otherwise.
type ParseConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"PARSE_DEFAULT_LANGUAGE" env-default:"de"`
	StrictSpelling  bool   `yaml:"strict_spelling"  env:"PARSE_STRICT_SPELLING"  env-default:"false"`
	MaxBatchSize    int    `yaml:"max_batch_size"   env:"PARSE_MAX_BATCH_SIZE"   env-default:"1000"`
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
