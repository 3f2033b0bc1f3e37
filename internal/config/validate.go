package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Feed.MaxPageSize <= 0 {
		return fmt.Errorf("feed.max_page_size must be > 0 (got %d)", c.Feed.MaxPageSize)
	}
	if c.Feed.ExcerptLength <= 0 {
		return fmt.Errorf("feed.excerpt_length must be > 0 (got %d)", c.Feed.ExcerptLength)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port (got %d)", c.Server.Port)
	}

	return nil
}
