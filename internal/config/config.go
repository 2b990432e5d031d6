package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Server struct {
	Port string
}

type Medres struct {
	BaseURL string
	Timeout time.Duration
}

type Security struct {
	JWTSecret string
}

type Kafka struct {
	Brokers []string
	GroupID string
	Topics  []string
}

type Websocket struct {
	SendBuffer int
}

type Logging struct {
	Dir    string
	Level  string
	Format string
}

type Config struct {
	Server    Server
	Medres    Medres
	Security  Security
	Kafka     Kafka
	Websocket Websocket
	Logging   Logging
}

func Load() *Config {
	return &Config{
		Server: Server{
			Port: envOr("PORT", "8080"),
		},
		Medres: Medres{
			BaseURL: envOr("MEDRES_API_URL", "http://localhost:4001"),
			Timeout: durationOr("MEDRES_TIMEOUT", 10*time.Second),
		},
		Security: Security{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Kafka: Kafka{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			GroupID: envOr("KAFKA_GROUP_ID", "medres-front"),
			Topics:  splitListOr(os.Getenv("KAFKA_TOPICS"), []string{"reservas.events"}),
		},
		Websocket: Websocket{
			SendBuffer: intOr("WS_SEND_BUFFER", 16),
		},
		Logging: Logging{
			Dir:    envOr("LOG_DIR", "logs"),
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intOr(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitListOr(raw string, fallback []string) []string {
	if list := splitList(raw); len(list) > 0 {
		return list
	}
	return fallback
}
