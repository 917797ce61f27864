package config

import (
	"time"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	GoTrue    GoTrueConfig    `yaml:"gotrue"`
	LLM       LLMConfig       `yaml:"llm"`
	Redis     RedisConfig     `yaml:"redis"`
	Billing   BillingConfig   `yaml:"billing"`
	Plans     PlansConfig     `yaml:"plans"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued by the
// external auth provider and signed with the shared JWT secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"`
	JWTAudience    string        `yaml:"jwt_audience"     env:"AUTH_JWT_AUDIENCE"     env-default:"authenticated"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// GoTrueConfig configures the optional password-login proxy.
type GoTrueConfig struct {
	ProjectRef string `yaml:"project_ref" env:"GOTRUE_PROJECT_REF"`
	URL        string `yaml:"url"         env:"GOTRUE_URL"`
	APIKey     string `yaml:"api_key"     env:"GOTRUE_API_KEY"`
}

// Enabled reports whether enough settings are present to reach GoTrue.
func (c GoTrueConfig) Enabled() bool {
	return c.APIKey != "" && (c.ProjectRef != "" || c.URL != "")
}

// LLMConfig selects and configures the text-completion provider.
type LLMConfig struct {
	Provider  string        `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"anthropic"`
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"`
	MaxTokens int           `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1000"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"60s"`
}

// RedisConfig configures the unique-visitor tracker. Empty Addr disables it.
type RedisConfig struct {
	Addr       string        `yaml:"addr"        env:"REDIS_ADDR"`
	Password   string        `yaml:"password"    env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db"          env:"REDIS_DB"          env-default:"0"`
	VisitorTTL time.Duration `yaml:"visitor_ttl" env:"REDIS_VISITOR_TTL" env-default:"48h"`
}

// BillingConfig configures the checkout collaborator. Empty CheckoutURL
// means payments are not configured.
type BillingConfig struct {
	CheckoutURL string        `yaml:"checkout_url" env:"BILLING_CHECKOUT_URL"`
	APIKey      string        `yaml:"api_key"      env:"BILLING_API_KEY"`
	Timeout     time.Duration `yaml:"timeout"      env:"BILLING_TIMEOUT"      env-default:"15s"`
	HistorySize int           `yaml:"history_size" env:"BILLING_HISTORY_SIZE" env-default:"10"`
}

// PlansConfig holds the profile allowance of each subscription plan.
type PlansConfig struct {
	FreeLimit   int `yaml:"free_limit"   env:"PLAN_FREE_LIMIT"   env-default:"1"`
	ProLimit    int `yaml:"pro_limit"    env:"PLAN_PRO_LIMIT"    env-default:"10"`
	AgencyLimit int `yaml:"agency_limit" env:"PLAN_AGENCY_LIMIT" env-default:"999"`
}

// Limits converts the config into the domain lookup table.
func (c PlansConfig) Limits() domain.PlanLimits {
	return domain.PlanLimits{
		domain.PlanFree:   c.FreeLimit,
		domain.PlanPro:    c.ProLimit,
		domain.PlanAgency: c.AgencyLimit,
	}
}

// RateLimitConfig holds per-IP request budgets per minute.
type RateLimitConfig struct {
	PublicPerMinute   int           `yaml:"public_per_minute"   env:"RATE_LIMIT_PUBLIC"   env-default:"120"`
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE" env-default:"10"`
	AuthPerMinute     int           `yaml:"auth_per_minute"     env:"RATE_LIMIT_AUTH"     env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
