package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Import   ImportConfig   `yaml:"import"`
	Activity ActivityConfig `yaml:"activity"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-API-Key"`
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
	AuthRateLimit   int           `yaml:"auth_rate_limit"  env:"SERVER_AUTH_RATE_LIMIT"  env-default:"20"`
	// ImportRateLimit bounds imports per minute per API key or user.
	ImportRateLimit int `yaml:"import_rate_limit" env:"SERVER_IMPORT_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	LogQueries      bool          `yaml:"log_queries"        env:"DATABASE_LOG_QUERIES"        env-default:"false"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"localize"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
	APIKeyPrefix   string        `yaml:"api_key_prefix"   env:"AUTH_API_KEY_PREFIX"   env-default:"tgpak_"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ImportConfig limits translation file imports.
type ImportConfig struct {
	MaxFileBytes     int64  `yaml:"max_file_bytes"    env:"IMPORT_MAX_FILE_BYTES"    env-default:"5242880"`
	MaxEntries       int    `yaml:"max_entries"       env:"IMPORT_MAX_ENTRIES"       env-default:"20000"`
	KeySeparator     string `yaml:"key_separator"     env:"IMPORT_KEY_SEPARATOR"     env-default:"."`
	OverrideExisting bool   `yaml:"override_existing" env:"IMPORT_OVERRIDE_EXISTING" env-default:"true"`
}

// ActivityConfig controls the project activity feed.
type ActivityConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"ACTIVITY_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"ACTIVITY_MAX_PAGE_SIZE"     env-default:"100"`
	// MaxEntitiesPerClass bounds the modified entities loaded per class for
	// feed pages. Zero loads all of them.
	MaxEntitiesPerClass int `yaml:"max_entities_per_class" env:"ACTIVITY_MAX_ENTITIES_PER_CLASS" env-default:"50"`
}

// ClampPageSize applies the default and the maximum to a requested page size.
func (c ActivityConfig) ClampPageSize(requested int) int {
	if requested <= 0 {
		return c.DefaultPageSize
	}
	return min(requested, c.MaxPageSize)
}

// Origins splits AllowedOrigins into a list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
