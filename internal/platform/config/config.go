// Package config loads server configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures everything the rosterd process needs at startup. Empty
// optional values (database, redis, kafka, contact store) disable the
// corresponding integration.
type Server struct {
	Addr              string
	AdminToken        string
	WebhookSecretHash string

	DatabaseURL string
	RedisURL    string

	KafkaBrokers []string
	KafkaTopic   string

	ContactsBaseURL     string
	ContactsTokenURL    string
	ContactsClientEmail string
	ContactsSigningKey  string

	MatchMinScore int
	DedupeTTL     time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:              envOr("ROSTERD_ADDR", ":8080"),
		AdminToken:        os.Getenv("ROSTERD_ADMIN_TOKEN"),
		WebhookSecretHash: os.Getenv("ROSTERD_WEBHOOK_SECRET_HASH"),

		DatabaseURL: os.Getenv("ROSTERD_DATABASE_URL"),
		RedisURL:    os.Getenv("ROSTERD_REDIS_URL"),

		KafkaBrokers: splitList(os.Getenv("ROSTERD_KAFKA_BROKERS")),
		KafkaTopic:   envOr("ROSTERD_KAFKA_TOPIC", "roster.member.upserted"),

		ContactsBaseURL:     os.Getenv("ROSTERD_CONTACTS_BASE_URL"),
		ContactsTokenURL:    os.Getenv("ROSTERD_CONTACTS_TOKEN_URL"),
		ContactsClientEmail: os.Getenv("ROSTERD_CONTACTS_CLIENT_EMAIL"),
		ContactsSigningKey:  os.Getenv("ROSTERD_CONTACTS_SIGNING_KEY"),

		MatchMinScore: envInt("ROSTERD_MATCH_MIN_SCORE", 0),
		DedupeTTL:     envDuration("ROSTERD_DEDUPE_TTL", 24*time.Hour),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
