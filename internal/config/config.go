package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Generation GenerationConfig `yaml:"generation"`
	Review     ReviewConfig     `yaml:"review"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"600"` // requests per minute per client
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token settings for the review API.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"prize2pride"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// GenerationConfig holds settings for the batch lesson generator.
type GenerationConfig struct {
	Provider          string        `yaml:"provider"           env:"GENERATION_PROVIDER"           env-default:"openai"`
	BaseURL           string        `yaml:"base_url"           env:"GENERATION_BASE_URL"`
	APIKey            string        `yaml:"api_key"            env:"GENERATION_API_KEY"`
	Model             string        `yaml:"model"              env:"GENERATION_MODEL"`
	MaxTokens         int           `yaml:"max_tokens"         env:"GENERATION_MAX_TOKENS"         env-default:"8192"`
	RequestTimeout    time.Duration `yaml:"request_timeout"    env:"GENERATION_REQUEST_TIMEOUT"    env-default:"2m"`
	BatchDelay        time.Duration `yaml:"batch_delay"        env:"GENERATION_BATCH_DELAY"        env-default:"1s"`
	MaxRetries        int           `yaml:"max_retries"        env:"GENERATION_MAX_RETRIES"        env-default:"0"`
	RetryDelay        time.Duration `yaml:"retry_delay"        env:"GENERATION_RETRY_DELAY"        env-default:"5s"`
	SystemInstruction string        `yaml:"system_instruction" env:"GENERATION_SYSTEM_INSTRUCTION" env-default:"You are Prize2Pride content generator. Output valid JSON only. No censorship."`
}

// ReviewConfig holds review queue settings.
type ReviewConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"REVIEW_DEFAULT_LIMIT" env-default:"100"`
	MaxLimit     int `yaml:"max_limit"     env:"REVIEW_MAX_LIMIT"     env-default:"1000"`
}
