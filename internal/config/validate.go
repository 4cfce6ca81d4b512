package config

import "fmt"

const minJWTSecretLen = 32

// Validate performs business-rule validation shared by every process.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	return nil
}

// ValidateServer checks settings only the review API needs.
func (c *Config) ValidateServer() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(c.Auth.JWTSecret))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	return nil
}

// ValidateForRun checks settings that must be present before a generation job starts.
func (g GenerationConfig) ValidateForRun() error {
	if g.APIKey == "" {
		return fmt.Errorf("generation.api_key is required")
	}
	if g.BaseURL == "" && g.Provider == ProviderOpenAI {
		return fmt.Errorf("generation.base_url is required for provider %q", ProviderOpenAI)
	}
	return nil
}

// Supported generation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

func (g GenerationConfig) validate() error {
	switch g.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderOpenAI, ProviderAnthropic, g.Provider)
	}
	if g.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", g.RequestTimeout)
	}
	if g.BatchDelay < 0 {
		return fmt.Errorf("batch_delay must be >= 0 (got %v)", g.BatchDelay)
	}
	if g.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", g.MaxRetries)
	}
	if g.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", g.RetryDelay)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}

func (r ReviewConfig) validate() error {
	if r.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", r.MaxLimit, r.DefaultLimit)
	}
	return nil
}
