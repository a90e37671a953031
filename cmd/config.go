package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"fastereats"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	DeliveryFee     decimal.Decimal `env:"DELIVERY_FEE" envDefault:"0"`
	CouponThreshold decimal.Decimal `env:"COUPON_THRESHOLD" envDefault:"3000"`
	CouponDiscount  decimal.Decimal `env:"COUPON_DISCOUNT" envDefault:"500"`
	CouponTTL       time.Duration   `env:"COUPON_TTL" envDefault:"168h"`
	CouponRetention time.Duration   `env:"COUPON_RETENTION" envDefault:"720h"`

	AuthServiceURL         string        `env:"AUTH_SERVICE_URL" envDefault:"http://localhost:5001"`
	NotificationServiceURL string        `env:"NOTIFICATION_SERVICE_URL" envDefault:"http://localhost:5005"`
	OutboundTimeout        time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"5s"`
	DirectoryRetryMax      int           `env:"DIRECTORY_RETRY_MAX" envDefault:"3"`

	OutboxBatchSize   int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	OutboxMaxAttempts int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"10"`
	OutboxLease       time.Duration `env:"OUTBOX_LEASE" envDefault:"2m"`

	InvoiceCurrency string `env:"INVOICE_CURRENCY" envDefault:"LKR"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads envFile (if it exists) into the process environment and
// then parses the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errList []error
	if c.DeliveryFee.IsNegative() {
		errList = append(errList, errors.New("DELIVERY_FEE must not be negative"))
	}
	if !c.CouponDiscount.IsPositive() {
		errList = append(errList, errors.New("COUPON_DISCOUNT must be positive"))
	}
	if c.CouponTTL <= 0 {
		errList = append(errList, errors.New("COUPON_TTL must be positive"))
	}
	if c.OutboxBatchSize < 1 {
		errList = append(errList, errors.New("OUTBOX_BATCH_SIZE must be at least 1"))
	}
	if c.OutboxMaxAttempts < 1 {
		errList = append(errList, errors.New("OUTBOX_MAX_ATTEMPTS must be at least 1"))
	}
	if c.OutboxLease <= 0 {
		errList = append(errList, errors.New("OUTBOX_LEASE must be positive"))
	}
	return errors.Join(errList...)
}

// DSN is the libpq-style connection string for the GORM postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
