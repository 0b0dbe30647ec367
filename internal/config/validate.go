package config

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/numerals"
)

// Validate checks ranges and that the default language has a registered
// parser. Load calls it; callers that build a Config by hand should too.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	if c.Parse.MaxBatchSize <= 0 {
		return fmt.Errorf("parse.max_batch_size must be > 0 (got %d)", c.Parse.MaxBatchSize)
	}
	if _, err := numerals.LookupString(c.Parse.DefaultLanguage); err != nil {
		return fmt.Errorf("parse.default_language %q: %w", c.Parse.DefaultLanguage, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
