package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App            AppConfig
	DB             DBConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Password       PasswordConfig
	LoginRateLimit LoginRateLimitConfig
	FeatureFlags   FeatureFlagsConfig
	CORS           CORSConfig
	GCP            GCPConfig
	GCS            GCSConfig
	Media          MediaConfig
	Fallback       FallbackConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MEMORYWALL_APP_ENV" required:"true"`
	Port         string `envconfig:"MEMORYWALL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MEMORYWALL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MEMORYWALL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MEMORYWALL_DB_DSN"`
	Driver string `envconfig:"MEMORYWALL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MEMORYWALL_DB_HOST"`
	LegacyPort     int    `envconfig:"MEMORYWALL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MEMORYWALL_DB_USER"`
	LegacyPassword string `envconfig:"MEMORYWALL_DB_PASSWORD"`
	LegacyName     string `envconfig:"MEMORYWALL_DB_NAME"`
	LegacySSLMode  string `envconfig:"MEMORYWALL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MEMORYWALL_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MEMORYWALL_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MEMORYWALL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MEMORYWALL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MEMORYWALL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MEMORYWALL_REDIS_ADDR"`
	Password     string        `envconfig:"MEMORYWALL_REDIS_PASSWORD"`
	DB           int           `envconfig:"MEMORYWALL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MEMORYWALL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MEMORYWALL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MEMORYWALL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MEMORYWALL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MEMORYWALL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"MEMORYWALL_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"MEMORYWALL_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"MEMORYWALL_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"MEMORYWALL_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MEMORYWALL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MEMORYWALL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MEMORYWALL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MEMORYWALL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MEMORYWALL_ARGON_KEY_LEN" default:"32"`
}

type LoginRateLimitConfig struct {
	Window     time.Duration `envconfig:"MEMORYWALL_LOGIN_RATE_LIMIT_WINDOW" default:"1m"`
	EmailLimit int           `envconfig:"MEMORYWALL_LOGIN_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
	IPLimit    int           `envconfig:"MEMORYWALL_LOGIN_RATE_LIMIT_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MEMORYWALL_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MEMORYWALL_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MEMORYWALL_CORS_ALLOWED_ORIGINS" default:"*"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"MEMORYWALL_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"MEMORYWALL_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"MEMORYWALL_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"MEMORYWALL_GCS_BUCKET_NAME" required:"true"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"MEMORYWALL_MAX_UPLOAD_MB" default:"50"`
}

// FallbackConfig controls the placeholder cards shown while the wall is empty.
type FallbackConfig struct {
	PlaceholderPrefix string `envconfig:"MEMORYWALL_FALLBACK_PLACEHOLDER_PREFIX" default:"placeholders"`
	Slots             int    `envconfig:"MEMORYWALL_FALLBACK_SLOTS" default:"3"`
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
