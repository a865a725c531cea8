package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// UserServiceURL — базовый URL user-service; оттуда берём реестр офицеров
	// департамента для автоназначения. Пустой — автоназначение выключено.
	UserServiceURL string
	// InternalServiceToken уходит в заголовок X-Internal-Token межсервисных вызовов.
	InternalServiceToken string

	// KafkaBrokers/KafkaTopicNotification — канал уведомлений (письма шлёт
	// notification-service, потребитель топика). Пустые — уведомления no-op.
	KafkaBrokers           []string
	KafkaTopicNotification string

	// EscalationInterval — период свипа автоэскалации.
	EscalationInterval time.Duration
	// AutoEscalationHours — срок до автоэскалации после назначения.
	AutoEscalationHours int

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Database string
		SSLMode  string
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:                getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:               firstEnv("APP_PORT", "HTTP_PORT", "8098"),
		AppEnv:                 getEnv("APP_ENV", "development"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		UserServiceURL:         getEnv("USER_SERVICE_URL", ""),
		InternalServiceToken:   getEnv("INTERNAL_SERVICE_TOKEN", ""),
		KafkaBrokers:           splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopicNotification: getEnv("KAFKA_TOPIC_NOTIFICATION", "notification.email"),
	}

	interval, err := time.ParseDuration(getEnv("ESCALATION_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("config: ESCALATION_INTERVAL: %w", err)
	}
	cfg.EscalationInterval = interval

	hours, err := strconv.Atoi(getEnv("AUTO_ESCALATION_HOURS", "72"))
	if err != nil {
		return nil, fmt.Errorf("config: AUTO_ESCALATION_HOURS: %w", err)
	}
	cfg.AutoEscalationHours = hours

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.Database = getEnv("DB_DATABASE", "grievance_service")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.Host == "" || c.DB.Database == "" {
		return errors.New("config: DB_HOST and DB_DATABASE are required")
	}
	if c.AppEnv == "production" && c.DB.Password == "" {
		return errors.New("config: in production DB_PASSWORD is required")
	}
	if c.EscalationInterval <= 0 {
		return errors.New("config: ESCALATION_INTERVAL must be positive")
	}
	if c.AutoEscalationHours <= 0 {
		return errors.New("config: AUTO_ESCALATION_HOURS must be positive")
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) DatabaseURL() string {
	pass := url.QueryEscape(c.DB.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, pass, c.DB.Host, c.DB.Port, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

// AutoEscalationAfter — дедлайн автоэскалации как Duration.
func (c *Config) AutoEscalationAfter() time.Duration {
	return time.Duration(c.AutoEscalationHours) * time.Hour
}

// splitList разбирает "host1:9092,host2:9092" в слайс.
func splitList(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
