package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Operator  OperatorConfig
	Store     StoreConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Driver   string // "sqlite" (default) or "postgres"
	Path     string // sqlite file location
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// OperatorConfig holds the single till operator's login. There is no user
// table; this terminal has exactly one account.
type OperatorConfig struct {
	Username string
	Password string
}

// StoreConfig describes the shop itself, printed on receipts.
type StoreConfig struct {
	Name       string
	Address    string
	Phone      string
	BillPrefix string
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int // receipt width in characters
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "billing_system.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "billing")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("OPERATOR_USERNAME", "operator")
	viper.SetDefault("OPERATOR_PASSWORD", "operator123")
	viper.SetDefault("STORE_NAME", "Billing System")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("BILL_PREFIX", "BN")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Path:     viper.GetString("DB_PATH"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Operator: OperatorConfig{
			Username: viper.GetString("OPERATOR_USERNAME"),
			Password: viper.GetString("OPERATOR_PASSWORD"),
		},
		Store: StoreConfig{
			Name:       viper.GetString("STORE_NAME"),
			Address:    viper.GetString("STORE_ADDRESS"),
			Phone:      viper.GetString("STORE_PHONE"),
			BillPrefix: viper.GetString("BILL_PREFIX"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
