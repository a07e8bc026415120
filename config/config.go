package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Payment  PaymentConfig
	Delivery DeliveryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type PaymentConfig struct {
	// PixExpiry is how long a generated PIX charge stays payable.
	PixExpiry time.Duration
	// MerchantName and MerchantCity are embedded in the BR-code payload.
	MerchantName string
	MerchantCity string
}

type DeliveryConfig struct {
	// Origin is the restaurant's fixed pickup point used for fee estimates.
	OriginLatitude  float64
	OriginLongitude float64
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3001"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_URL", "host=localhost user=postgres password= dbname=grillmanager port=5432 sslmode=disable"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Payment: PaymentConfig{
			PixExpiry:    30 * time.Minute,
			MerchantName: "BOTECO MAMINHA",
			MerchantCity: "SAO PAULO",
		},
		Delivery: DeliveryConfig{
			OriginLatitude:  getEnvFloat("RESTAURANT_LAT", -23.5505),
			OriginLongitude: getEnvFloat("RESTAURANT_LNG", -46.6333),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
