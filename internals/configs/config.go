// file: internals/configs/config.go
package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	GatewayFailureRate float64
	OTPTTL             time.Duration
	SimLatency         time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET", "feeportal-dev-secret")
	GatewayFailureRate = getEnvFloat("GATEWAY_FAILURE_RATE", 0.1)
	OTPTTL = getEnvDuration("OTP_TTL", 5*time.Minute)
	SimLatency = getEnvDuration("SIM_LATENCY", 0)

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET not set, using development default")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[WARN] %s: not a number, using default %v", key, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[WARN] %s: not a duration, using default %v", key, def)
	}
	return def
}
