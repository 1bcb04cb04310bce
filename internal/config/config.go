package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AdminPartition string        // blob name for the admin collection (default "links.xlsx")
	GuestPrefix    string        // blob name prefix for guest collections (default "links_")
	FetchTimeout   time.Duration // timeout for metadata page fetches (default: 5s)

	// Redis (remote blob store). RedisAddr empty = remote store disabled,
	// everything degrades to the session cache.
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKSTASH_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKSTASH_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKSTASH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKSTASH_PRETTY_LOG", true),

		// Pipeline
		AdminPartition: getenv("LINKSTASH_ADMIN_PARTITION", "links.xlsx"),
		GuestPrefix:    getenv("LINKSTASH_GUEST_PREFIX", "links_"),
		FetchTimeout:   mustDuration("LINKSTASH_FETCH_TIMEOUT", 5*time.Second),

		// Redis settings
		RedisAddr:           getenv("LINKSTASH_REDIS_ADDR", ""),
		RedisUser:           getenv("LINKSTASH_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("LINKSTASH_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("LINKSTASH_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.AdminPartition == "" {
		panic("❌ FATAL: LINKSTASH_ADMIN_PARTITION must not be empty")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
