package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	DBPath    string `env:"DB_PATH,    default=membership.db"`

	Session SessionConfig
	Ledger  LedgerConfig
	SMTP    SMTPConfig
	Redis   RedisConfig
	Contact ContactConfig
	Bizinfo BizinfoConfig
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
}

// LedgerConfig fixes the tracked year window. The window never moves at
// runtime; restart the service to extend it.
type LedgerConfig struct {
	StartYear int `env:"LEDGER_START_YEAR, default=2025"`
	Years     int `env:"LEDGER_YEARS,      default=6"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=smtp.naver.com"`
	Port     int    `env:"SMTP_PORT, default=465"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
}

// RedisConfig is optional: an empty Addr selects the in-process fallbacks.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type ContactConfig struct {
	// Recipient is the inbox that receives contact notifications. Empty
	// disables the contact pipeline.
	Recipient string        `env:"CONTACT_EMAIL"`
	RateMax   int           `env:"CONTACT_RATE_MAX,    default=3"`
	RateEvery time.Duration `env:"CONTACT_RATE_WINDOW, default=10m"`
}

type BizinfoConfig struct {
	APIKey  string `env:"BIZINFO_API_KEY"`
	BaseURL string `env:"BIZINFO_BASE_URL, default=https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// MailConfigured reports whether outbound mail can be sent at all.
func (c *Config) MailConfigured() bool {
	return c.SMTP.Password != "" && c.Contact.Recipient != ""
}
