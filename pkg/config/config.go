package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const (
	EnvPrefix = "CARTS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv     = "CARTS_APP_ENV"
	EnvPort       = "CARTS_APP_PORT"
	EnvDBDSN      = "CARTS_DB_DSN"
	EnvDBHost     = "CARTS_DB_HOST"
	EnvDBUser     = "CARTS_DB_USER"
	EnvDBName     = "CARTS_DB_NAME"
	EnvRedisURL   = "CARTS_REDIS_URL"
	EnvJWTSecret  = "CARTS_JWT_SECRET"
	EnvJWTIssuer  = "CARTS_JWT_ISSUER"
	EnvJWTExpMins = "CARTS_JWT_EXPIRATION_MINUTES"
	EnvUseSQLite  = "CARTS_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	RateLimit    RateLimitConfig
	Idempotency  IdempotencyConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate reports every inconsistent setting at once.
func (c *Config) validate() error {
	var errs error
	if c.JWT.ExpirationMinutes <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("CARTS_JWT_EXPIRATION_MINUTES must be positive"))
	}
	if c.JWT.RequireSession && !c.Redis.Enabled() {
		errs = multierr.Append(errs, fmt.Errorf("CARTS_JWT_REQUIRE_SESSION needs CARTS_REDIS_URL or CARTS_REDIS_ADDR"))
	}
	if c.RateLimit.MutationLimit < 0 {
		errs = multierr.Append(errs, fmt.Errorf("CARTS_RATE_LIMIT_MUTATIONS must not be negative"))
	}
	if c.RateLimit.MutationLimit > 0 && c.RateLimit.Window <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("CARTS_RATE_LIMIT_WINDOW must be positive"))
	}
	if c.Idempotency.TTL < 0 {
		errs = multierr.Append(errs, fmt.Errorf("CARTS_IDEMPOTENCY_TTL must not be negative"))
	}
	return errs
}

type AppConfig struct {
	Env          string `envconfig:"CARTS_APP_ENV" required:"true"`
	Port         string `envconfig:"CARTS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CARTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARTS_LOG_WARN_STACK" default:"false"`

	// Comma separated list of browser origins allowed by CORS.
	CORSOrigins []string `envconfig:"CARTS_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"CARTS_DB_DSN"`
	Driver     string `envconfig:"CARTS_DB_DRIVER" default:"postgres"`
	SQLitePath string `envconfig:"CARTS_DB_SQLITE_PATH" default:"carts.db"`

	LegacyHost     string `envconfig:"CARTS_DB_HOST"`
	LegacyPort     int    `envconfig:"CARTS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CARTS_DB_USER"`
	LegacyPassword string `envconfig:"CARTS_DB_PASSWORD"`
	LegacyName     string `envconfig:"CARTS_DB_NAME"`
	LegacySSLMode  string `envconfig:"CARTS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CARTS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CARTS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CARTS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CARTS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CARTS_REDIS_URL"`
	Address      string        `envconfig:"CARTS_REDIS_ADDR"`
	Password     string        `envconfig:"CARTS_REDIS_PASSWORD"`
	DB           int           `envconfig:"CARTS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CARTS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CARTS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CARTS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CARTS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CARTS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"CARTS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CARTS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CARTS_JWT_EXPIRATION_MINUTES" default:"60"`
	RequireSession    bool   `envconfig:"CARTS_JWT_REQUIRE_SESSION" default:"false"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type RateLimitConfig struct {
	Window        time.Duration `envconfig:"CARTS_RATE_LIMIT_WINDOW" default:"1m"`
	MutationLimit int           `envconfig:"CARTS_RATE_LIMIT_MUTATIONS" default:"60"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"CARTS_IDEMPOTENCY_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CARTS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CARTS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
