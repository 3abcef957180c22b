package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.TimeoutMS < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.timeout_ms: must be positive, got %d", c.TMDB.TimeoutMS))
	}
	if c.TMDB.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.TMDB.BaseURL); err != nil {
			errs = append(errs, fmt.Sprintf("tmdb.base_url: not a valid URL: %q", c.TMDB.BaseURL))
		}
	}

	return errs
}
