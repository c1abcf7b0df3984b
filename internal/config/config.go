package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type MySQL struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

type Redis struct {
	Host     string        `yaml:"host"`
	PromoTTL time.Duration `yaml:"promo_ttl"`
}

type RabbitMQ struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

type Config struct {
	Port        string        `yaml:"port"`
	Env         string        `yaml:"env"`
	LogLevel    string        `yaml:"log_level"`
	LateAfter   time.Duration `yaml:"late_after"`
	MaxOpenConn int           `yaml:"max_open_conns"`
	MySQL       MySQL         `yaml:"mysql"`
	Redis       Redis         `yaml:"redis"`
	RabbitMQ    RabbitMQ      `yaml:"rabbitmq"`
}

func Default() Config {
	return Config{
		Port:        "8080",
		Env:         "production",
		LogLevel:    "info",
		LateAfter:   60 * time.Minute,
		MaxOpenConn: 20,
		MySQL: MySQL{
			User:     "root",
			Host:     "localhost",
			Port:     "3306",
			Database: "counter",
		},
		Redis:    Redis{PromoTTL: time.Minute},
		RabbitMQ: RabbitMQ{Exchange: "order.exchange"},
	}
}

// Load starts from Default, applies the YAML file named by CONFIG_FILE if
// set, then the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Env, "ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.MySQL.User, "MYSQL_USER")
	setString(&cfg.MySQL.Password, "MYSQL_PASSWORD")
	setString(&cfg.MySQL.Host, "MYSQL_HOST")
	setString(&cfg.MySQL.Port, "MYSQL_PORT")
	setString(&cfg.MySQL.Database, "MYSQL_DATABASE")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.RabbitMQ.URL, "RABBITMQ_URL")
	setString(&cfg.RabbitMQ.Exchange, "RABBITMQ_EXCHANGE")

	if v := os.Getenv("PROMO_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PROMO_CACHE_TTL: %w", err)
		}
		cfg.Redis.PromoTTL = d
	}
	if v := os.Getenv("LATE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LATE_MINUTES: %w", err)
		}
		cfg.LateAfter = time.Duration(n) * time.Minute
	}
	if v := os.Getenv("MYSQL_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MYSQL_MAX_OPEN_CONNS: %w", err)
		}
		cfg.MaxOpenConn = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
