package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/internal/pricing"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig   `toml:"server"`
	Database         DatabaseConfig `toml:"database"`
	Logs             LogsConfig     `toml:"logs"`
	Metrics          MetricsConfig  `toml:"metrics"`
	Redis            RedisConfig    `toml:"redis"`
	RabbitMQ         RabbitMQConfig `toml:"rabbitmq"`
	InventoryService ServiceConfig  `toml:"inventory_service"`
	PartnerService   ServiceConfig  `toml:"partner_service"`
	Pricing          PricingConfig  `toml:"pricing"`
	Currency         CurrencyConfig `toml:"currency"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки блокировок носителей
// Если выключено, блокировки не используются и защиту даёт только serializable транзакция
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	LockTTLSec int    `toml:"lock_ttl"`
}

// RabbitMQConfig настройки журнала заметок
type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

// ServiceConfig настройки внешнего HTTP сервиса (таймаут в секундах)
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// PricingConfig переопределения таблицы престижа площадок
type PricingConfig struct {
	SitePrestige map[string]string `toml:"site_prestige"`
}

// CurrencyConfig точность денежных сумм в ответах
type CurrencyConfig struct {
	Precision int32 `toml:"precision"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ad_placement_service"
	}

	if c.Redis.LockTTLSec == 0 {
		c.Redis.LockTTLSec = 30
	}

	if c.RabbitMQ.Queue == "" {
		c.RabbitMQ.Queue = "subscription.audit"
	}

	if c.InventoryService.Timeout == 0 {
		c.InventoryService.Timeout = 5
	}
	if c.PartnerService.Timeout == 0 {
		c.PartnerService.Timeout = 5
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.InventoryService.URL == "" {
		return fmt.Errorf("%w: inventory_service.url is required", ErrInvalidConfig)
	}
	if c.PartnerService.URL == "" {
		return fmt.Errorf("%w: partner_service.url is required", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if c.Currency.Precision < 0 || c.Currency.Precision > 8 {
		return fmt.Errorf("%w: currency.precision must be within 0..8", ErrInvalidConfig)
	}
	if _, err := c.Pricing.Prestige(); err != nil {
		return err
	}
	return nil
}

// Prestige возвращает таблицу престижа: значения по умолчанию с переопределениями из файла
func (p PricingConfig) Prestige() (map[domain.Site]decimal.Decimal, error) {
	if len(p.SitePrestige) == 0 {
		return nil, nil
	}

	table := make(map[domain.Site]decimal.Decimal, len(pricing.DefaultPrestige))
	for site, amount := range pricing.DefaultPrestige {
		table[site] = amount
	}

	for key, raw := range p.SitePrestige {
		site, err := domain.ParseSite(key)
		if err != nil {
			return nil, fmt.Errorf("%w: pricing.site_prestige: %v", ErrInvalidConfig, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil || amount.IsNegative() {
			return nil, fmt.Errorf("%w: pricing.site_prestige.%s: invalid amount %q", ErrInvalidConfig, key, raw)
		}
		table[site] = amount
	}
	return table, nil
}

// CurrencyPrecision точность для слоя представления
func (c CurrencyConfig) CurrencyPrecision() domain.CurrencyPrecision {
	return domain.CurrencyPrecision{Places: c.Precision}
}
