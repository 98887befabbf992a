package config

import (
	"os"
	"strconv"
	"strings"
)

// Config представляет конфигурацию приложения
type Config struct {
	Server    ServerConfig    `json:"server"`
	Redis     RedisConfig     `json:"redis"`
	Kafka     KafkaConfig     `json:"kafka"`
	Logger    LoggerConfig    `json:"logger"`
	VenueAPI  VenueAPIConfig  `json:"venue_api"`
	Pricing   PricingConfig   `json:"pricing"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// ServerConfig представляет конфигурацию HTTP сервера
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
}

// RedisConfig представляет конфигурацию Redis
type RedisConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// KafkaConfig представляет конфигурацию Kafka
type KafkaConfig struct {
	Brokers []string `json:"brokers"`
	Topics  Topics   `json:"topics"`
}

// Topics представляет список топиков Kafka
type Topics struct {
	Quotes string `json:"quotes"`
}

// LoggerConfig представляет конфигурацию логгера
type LoggerConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
	File   string `json:"file"`
}

// VenueAPIConfig описывает внешний API с данными заведений.
// Слаг заведения оканчивается городом, город определяет страну,
// страна определяет базовый URL API.
type VenueAPIConfig struct {
	DefaultBaseURL  string            `json:"default_base_url"`
	CountryBaseURLs map[string]string `json:"country_base_urls"` // код страны -> базовый URL
	CityCountries   map[string]string `json:"city_countries"`    // город из слага -> код страны
	TimeoutSeconds  int               `json:"timeout_seconds"`
}

// PricingConfig хранит настройки расчёта цены доставки
type PricingConfig struct {
	DistanceMethod string `json:"distance_method"` // planar | haversine
}

// RateLimitConfig описывает настройки rate limiting
type RateLimitConfig struct {
	Enabled       bool   `json:"enabled"`
	Requests      int    `json:"requests"`
	WindowSeconds int    `json:"window_seconds"`
	KeyPrefix     string `json:"key_prefix"`
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topics: Topics{
				Quotes: getEnv("KAFKA_TOPIC_QUOTES", "quotes"),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
		VenueAPI: VenueAPIConfig{
			DefaultBaseURL:  getEnv("VENUE_API_BASE_URL", "https://consumer-api.development.dev.woltapi.com"),
			CountryBaseURLs: getEnvAsMap("VENUE_API_COUNTRY_URLS", map[string]string{}),
			CityCountries: getEnvAsMap("VENUE_API_CITIES", map[string]string{
				"helsinki":  "fi",
				"stockholm": "se",
				"berlin":    "de",
				"tokyo":     "jp",
			}),
			TimeoutSeconds: getEnvAsInt("VENUE_API_TIMEOUT_SECONDS", 10),
		},
		Pricing: PricingConfig{
			DistanceMethod: getEnv("PRICING_DISTANCE_METHOD", "planar"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", false),
			Requests:      getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			WindowSeconds: getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60),
			KeyPrefix:     getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit"),
		},
	}
}

// BaseURLFor возвращает базовый URL API для кода страны
func (c *VenueAPIConfig) BaseURLFor(country string) string {
	if url, ok := c.CountryBaseURLs[country]; ok && url != "" {
		return url
	}
	return c.DefaultBaseURL
}

// getEnv получает значение переменной окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает значение переменной окружения как int с значением по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool получает значение переменной окружения как bool с значением по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if valueStr == "true" || valueStr == "1" || valueStr == "yes" {
		return true
	}
	if valueStr == "false" || valueStr == "0" || valueStr == "no" {
		return false
	}
	return defaultValue
}

// getEnvAsMap парсит переменную окружения вида "key1:val1,key2:val2"
func getEnvAsMap(key string, defaultValue map[string]string) map[string]string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	result := make(map[string]string)
	for _, pair := range strings.Split(valueStr, ",") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])
		if k != "" && v != "" {
			result[k] = v
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
