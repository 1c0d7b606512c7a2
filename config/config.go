package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Risk     RiskConfig     `mapstructure:"risk"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the operational HTTP surface (health/readiness only).
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ProviderEndpoint configures one external payment processor endpoint.
type ProviderEndpoint struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// PaymentConfig configures routing and failover for deposit processing.
// Amounts are in minor currency units (cents).
type PaymentConfig struct {
	// RetryDelays is the wait schedule between attempts against one provider.
	// Total attempts per provider = 1 + len(RetryDelays).
	RetryDelays []time.Duration `mapstructure:"retry_delays"`
	// LargeAmountThreshold promotes the open-banking provider when exceeded.
	LargeAmountThreshold int64  `mapstructure:"large_amount_threshold"`
	OpenBankingProvider  string `mapstructure:"open_banking_provider"`
	// Routing maps ISO country code to an ordered provider sequence.
	Routing         map[string][]string `mapstructure:"routing"`
	DefaultSequence []string            `mapstructure:"default_sequence"`
	// Providers maps provider name to its HTTP endpoint configuration.
	Providers       map[string]ProviderEndpoint `mapstructure:"providers"`
	StripeSecretKey string                      `mapstructure:"stripe_secret_key"`
}

// RiskConfig configures the responsible-gambling heuristics.
// Amounts are in minor currency units (cents).
type RiskConfig struct {
	LossChasingDeposits int           `mapstructure:"loss_chasing_deposits"`
	LossChasingWindow   time.Duration `mapstructure:"loss_chasing_window"`
	VelocityDebits      int           `mapstructure:"velocity_debits"`
	VelocityWindow      time.Duration `mapstructure:"velocity_window"`
	LateNightStartHour  int           `mapstructure:"late_night_start_hour"`
	LateNightEndHour    int           `mapstructure:"late_night_end_hour"`
	AffordabilitySum    int64         `mapstructure:"affordability_sum"`
	AffordabilityWindow time.Duration `mapstructure:"affordability_window"`
}

// NotifyConfig configures outbound notification sinks.
type NotifyConfig struct {
	SlackWebhookURL string        `mapstructure:"slack_webhook_url"`
	CRMBaseURL      string        `mapstructure:"crm_base_url"`
	CRMTokenSecret  string        `mapstructure:"crm_token_secret"`
	CRMTokenTTL     time.Duration `mapstructure:"crm_token_ttl"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CWG_ (Casino Wallet Gateway).
// Nested keys use underscore: CWG_DATABASE_HOST, CWG_PAYMENT_STRIPE_SECRET_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("payment.retry_delays", []string{"1s", "3s"})
	v.SetDefault("payment.large_amount_threshold", 500000)
	v.SetDefault("payment.open_banking_provider", "Trustly")
	v.SetDefault("payment.routing", map[string][]string{
		"UK": {"Trustly", "Adyen", "Stripe"},
		"MT": {"Adyen", "Trustly", "Stripe"},
		"SE": {"Trustly", "Stripe", "Adyen"},
		"DE": {"Adyen", "Stripe", "Trustly"},
	})
	v.SetDefault("payment.default_sequence", []string{"Adyen", "Stripe", "Trustly"})
	v.SetDefault("payment.stripe_secret_key", "")
	v.SetDefault("risk.loss_chasing_deposits", 5)
	v.SetDefault("risk.loss_chasing_window", "24h")
	v.SetDefault("risk.velocity_debits", 10)
	v.SetDefault("risk.velocity_window", "60s")
	v.SetDefault("risk.late_night_start_hour", 2)
	v.SetDefault("risk.late_night_end_hour", 6)
	v.SetDefault("risk.affordability_sum", 100000)
	v.SetDefault("risk.affordability_window", "720h")
	v.SetDefault("notify.slack_webhook_url", "")
	v.SetDefault("notify.crm_base_url", "")
	v.SetDefault("notify.crm_token_secret", "")
	v.SetDefault("notify.crm_token_ttl", "5m")
	v.SetDefault("notify.http_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CWG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CWG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
