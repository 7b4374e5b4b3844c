// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Redis         RedisConfig         `toml:"redis"`
	NotifyService NotifyServiceConfig `toml:"notify_service"`
	Schedule      ScheduleConfig      `toml:"schedule"`
	Pricing       PricingConfig       `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis для live-update рассылки
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// NotifyServiceConfig настройки клиента сервиса уведомлений
type NotifyServiceConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig операционное окно салона
type ScheduleConfig struct {
	Open     string   `toml:"open"`     // "08:00"
	Close    string   `toml:"close"`    // "20:00"
	Workdays []string `toml:"workdays"` // ["monday", ..., "friday"]
}

// PricingConfig таблица скидок по уровням лояльности
type PricingConfig struct {
	Gold   float64 `toml:"gold"`
	Silver float64 `toml:"silver"`
	Bronze float64 `toml:"bronze"`
	Worker float64 `toml:"worker"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if _, err := c.DomainSchedule(); err != nil {
		return err
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DomainSchedule конвертирует конфигурацию расписания в доменную модель
// Пустая секция [schedule] даёт стандартное окно 08:00-20:00, пн-пт
func (c *Config) DomainSchedule() (domain.Schedule, error) {
	if c.Schedule.Open == "" && c.Schedule.Close == "" && len(c.Schedule.Workdays) == 0 {
		return domain.DefaultSchedule(), nil
	}

	open, err := parseClock(c.Schedule.Open)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: schedule.open: %w", err)
	}
	close, err := parseClock(c.Schedule.Close)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: schedule.close: %w", err)
	}
	if close <= open {
		return domain.Schedule{}, fmt.Errorf("config: schedule.close must be after schedule.open")
	}

	workdays := make(map[time.Weekday]bool, len(c.Schedule.Workdays))
	for _, name := range c.Schedule.Workdays {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return domain.Schedule{}, fmt.Errorf("config: schedule.workdays: unknown weekday %q", name)
		}
		workdays[wd] = true
	}

	return domain.Schedule{
		OpenMinutes:  open,
		CloseMinutes: close,
		Workdays:     workdays,
	}, nil
}

// DomainDiscounts конвертирует конфигурацию скидок в доменную таблицу
// Нулевая секция [pricing] даёт стандартную таблицу скидок
func (c *Config) DomainDiscounts() domain.DiscountTable {
	p := c.Pricing
	if p.Gold == 0 && p.Silver == 0 && p.Bronze == 0 && p.Worker == 0 {
		return domain.DefaultDiscounts()
	}
	return domain.DiscountTable{
		domain.TierGold:   p.Gold,
		domain.TierSilver: p.Silver,
		domain.TierBronze: p.Bronze,
		domain.TierWorker: p.Worker,
	}
}

// parseClock парсит "HH:MM" в минуты от полуночи
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
