package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks invariants that tag-level defaults cannot express.
// Called once by Load; returns the first error encountered.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	// HS256 needs a high-entropy key; shorter secrets are trivially brute-forced.
	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("auth.jwt_secret must be at least 32 characters")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return errors.New("auth.access_token_ttl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return errors.New("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	if c.Forum.TopPostsLimit <= 0 {
		return errors.New("forum.top_posts_limit must be positive")
	}
	if c.Forum.TrendingTopicsLimit <= 0 {
		return errors.New("forum.trending_topics_limit must be positive")
	}
	if c.Forum.SearchLimit <= 0 {
		return errors.New("forum.search_limit must be positive")
	}
	if c.Forum.MutationsPerMinute <= 0 {
		return errors.New("forum.mutations_per_minute must be positive")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level unknown: %q", c.Log.Level)
	}

	return nil
}
