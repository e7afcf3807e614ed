package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"aromashop/internal/checkout"
)

// Config настройки процесса. Ключи совпадают с именами переменных окружения.
type Config struct {
	HTTPAddr  string `mapstructure:"HTTP_ADDR"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPrefix   string `mapstructure:"REDIS_PREFIX"`
	PostgresDSN   string `mapstructure:"POSTGRES_DSN"`

	NotifyChannel      string        `mapstructure:"NOTIFY_CHANNEL"`
	TelegramAPIURL     string        `mapstructure:"TELEGRAM_API_URL"`
	TelegramBotToken   string        `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID     string        `mapstructure:"TELEGRAM_CHAT_ID"`
	NotifyTimeout      time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
	IntegrationTimeout time.Duration `mapstructure:"INTEGRATION_TIMEOUT"`
	KafkaBrokers       []string      `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic         string        `mapstructure:"KAFKA_TOPIC"`

	CheckoutVariant string `mapstructure:"CHECKOUT_VARIANT"`
	OrderIDScheme   string `mapstructure:"ORDER_ID_SCHEME"`

	AdminUser     string `mapstructure:"ADMIN_USER"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	ChannelTelegram = "telegram"
	ChannelLog      = "log"

	SchemeLegacy = "legacy"
	SchemeUUID   = "uuid"
)

var defaults = map[string]any{
	"HTTP_ADDR":           ":9091",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"STORE_BACKEND":       BackendMemory,
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"REDIS_PREFIX":        "aromashop",
	"POSTGRES_DSN":        "",
	"NOTIFY_CHANNEL":      ChannelLog,
	"TELEGRAM_API_URL":    "https://api.telegram.org",
	"TELEGRAM_BOT_TOKEN":  "",
	"TELEGRAM_CHAT_ID":    "",
	"NOTIFY_TIMEOUT":      "10s",
	"INTEGRATION_TIMEOUT": "15s",
	"KAFKA_BROKERS":       []string{},
	"KAFKA_TOPIC":         "orders.placed",
	"CHECKOUT_VARIANT":    string(checkout.VariantExtended),
	"ORDER_ID_SCHEME":     SchemeLegacy,
	"ADMIN_USER":          "",
	"ADMIN_PASSWORD":      "",
}

// Load reads the optional config file at path, then lets environment variables override
// any key. An empty path means environment and defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.KafkaBrokers = splitList(cfg.KafkaBrokers)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList flattens "a, b" entries and drops blanks.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.NotifyChannel {
	case ChannelLog:
	case ChannelTelegram:
		if c.TelegramBotToken == "" || c.TelegramChatID == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required for the telegram channel")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_CHANNEL %q", c.NotifyChannel)
	}
	if _, err := checkout.ParseVariant(c.CheckoutVariant); err != nil {
		return err
	}
	if c.OrderIDScheme != SchemeLegacy && c.OrderIDScheme != SchemeUUID {
		return fmt.Errorf("unknown ORDER_ID_SCHEME %q", c.OrderIDScheme)
	}
	if (c.AdminUser == "") != (c.AdminPassword == "") {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASSWORD must be set together")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// AdminAuthEnabled reports whether admin routes sit behind basic auth.
func (c *Config) AdminAuthEnabled() bool { return c.AdminUser != "" }
