package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, pricing, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"

	CatalogSourceMock     = "mock"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	SQLite  SQLiteConfig
	DB      DBConfig
	Catalog CatalogConfig
	Cart    CartConfig
	Pricing PricingConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
}

type SQLiteConfig struct {
	Path string `envconfig:"SQLITE_PATH" default:"storefront.db"`
}

// DBConfig is only read when STORAGE_DRIVER or CATALOG_SOURCE is postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

type CatalogConfig struct {
	Source string `envconfig:"CATALOG_SOURCE" default:"mock"`
}

// CartConfig.SessionIdleTTL of zero keeps every cart session in memory.
type CartConfig struct {
	SessionIdleTTL time.Duration `envconfig:"CART_SESSION_IDLE_TTL" default:"30m"`
}

type PricingConfig struct {
	TaxRate               string `envconfig:"PRICING_TAX_RATE" default:"0.08"`
	FlatShipping          string `envconfig:"PRICING_FLAT_SHIPPING" default:"9.99"`
	FreeShippingThreshold string `envconfig:"PRICING_FREE_SHIPPING_THRESHOLD" default:"75.00"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.User == "" || c.DBName == "" {
		return errors.New("DB_USER and DB_NAME are required for the postgres driver")
	}
	return nil
}

// UsesPostgres reports whether any component needs a PostgreSQL connection.
func (c Config) UsesPostgres() bool {
	return c.Storage.Driver == StorageDriverPostgres || c.Catalog.Source == CatalogSourcePostgres
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory, StorageDriverSQLite, StorageDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	switch cfg.Catalog.Source {
	case CatalogSourceMock, CatalogSourcePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported CATALOG_SOURCE %q", cfg.Catalog.Source)
	}
	if cfg.UsesPostgres() {
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceMock,
		},
		Cart: CartConfig{
			SessionIdleTTL: 30 * time.Minute,
		},
		Pricing: PricingConfig{
			TaxRate:               "0.08",
			FlatShipping:          "9.99",
			FreeShippingThreshold: "75.00",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
	}
}
