package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Registry.validate(); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (r *RegistryConfig) validate() error {
	if r.MaxFieldsPerDirectory <= 0 {
		return fmt.Errorf("max_fields_per_directory must be > 0 (got %d)", r.MaxFieldsPerDirectory)
	}
	if r.EdgePageLimit <= 0 {
		return fmt.Errorf("edge_page_limit must be > 0 (got %d)", r.EdgePageLimit)
	}
	if r.HardDeleteRetentionDays < 0 {
		return fmt.Errorf("hard_delete_retention_days must be >= 0 (got %d)", r.HardDeleteRetentionDays)
	}
	return nil
}
