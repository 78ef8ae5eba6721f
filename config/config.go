package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the API needs. It is built once in main and
// passed down explicitly; handlers never read the environment themselves.
type Config struct {
	Port   string `mapstructure:"PORT"`
	AppEnv string `mapstructure:"APP_ENV"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`

	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGIN"`
	PublicSiteURL     string `mapstructure:"PUBLIC_SITE_URL"`

	JWTSecret       string `mapstructure:"JWT_SECRET"`
	AdminAPIKey     string `mapstructure:"ADMIN_API_KEY"`
	SuperAdminEmail string `mapstructure:"SUPER_ADMIN_EMAIL"`

	FirebaseCredentialsJSON string `mapstructure:"FIREBASE_CREDENTIALS_JSON"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`

	UploadsDir string `mapstructure:"UPLOADS_DIR"`
	// BackupDir empty disables the nightly uploads backup.
	BackupDir           string `mapstructure:"BACKUP_DIR"`
	BackupRetentionDays int    `mapstructure:"BACKUP_RETENTION_DAYS"`
	BackupHour          int    `mapstructure:"BACKUP_HOUR"`

	CheckoutStrictProducts bool   `mapstructure:"CHECKOUT_STRICT_PRODUCTS"`
	CheckoutCurrency       string `mapstructure:"CHECKOUT_CURRENCY"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
}

var keys = []string{
	"PORT", "APP_ENV",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET",
	"CORS_ALLOWED_ORIGIN", "PUBLIC_SITE_URL",
	"JWT_SECRET", "ADMIN_API_KEY", "SUPER_ADMIN_EMAIL",
	"FIREBASE_CREDENTIALS_JSON", "FIREBASE_PROJECT_ID",
	"UPLOADS_DIR", "BACKUP_DIR", "BACKUP_RETENTION_DAYS", "BACKUP_HOUR",
	"CHECKOUT_STRICT_PRODUCTS", "CHECKOUT_CURRENCY",
	"LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("UPLOADS_DIR", "/var/www/plantas/uploads")
	v.SetDefault("BACKUP_RETENTION_DAYS", 4)
	v.SetDefault("BACKUP_HOUR", 2)
	v.SetDefault("CHECKOUT_STRICT_PRODUCTS", false)
	v.SetDefault("CHECKOUT_CURRENCY", "brl")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE,
// and finally the process environment, which wins over both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind each one explicitly.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.CheckoutCurrency = strings.ToLower(strings.TrimSpace(cfg.CheckoutCurrency))
	return &cfg, nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// IsDevelopment reports whether the API runs in a local/dev environment.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.AppEnv)
	return env == "development" || env == "dev" || env == "local"
}

// FirebaseEnabled reports whether Google admin login can be offered.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCredentialsJSON != "" && c.FirebaseProjectID != ""
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" && (c.DBHost == "" || c.DBName == "") {
		errs = append(errs, errors.New("DATABASE_URL or DB_HOST/DB_NAME must be set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.StripeSecretKey == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY must be set"))
	}
	if c.BackupHour < 0 || c.BackupHour > 23 {
		errs = append(errs, errors.New("BACKUP_HOUR must be between 0 and 23"))
	}
	if c.CheckoutCurrency == "" {
		errs = append(errs, errors.New("CHECKOUT_CURRENCY must not be empty"))
	}
	return errors.Join(errs...)
}
