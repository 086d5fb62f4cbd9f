package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DEFAULT_PORT               = "8000"
	DEFAULT_YOUTUBE_TIMEOUT    = 15 * time.Second
	DEFAULT_METADATA_CACHE_TTL = time.Hour
)

// DefaultCORSOrigins are the frontends allowed to call the API when
// CORS_ORIGINS is not set.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://sentiment-frontend-gamma.vercel.app",
}

// Settings is read once at startup and handed to constructors.
type Settings struct {
	Port        string
	LogLevel    string
	CORSOrigins []string

	YouTubeAPIKey      string
	YouTubeEndpoint    string
	YouTubeMaxAttempts int
	YouTubeTimeout     time.Duration

	ValkeyAddress    string
	ValkeyPassword   string
	ValkeyTLS        bool
	MetadataCacheTTL time.Duration
}

func Load() Settings {
	s := Settings{
		Port:               getEnv("PORT", DEFAULT_PORT),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitOrigins(os.Getenv("CORS_ORIGINS")),
		YouTubeAPIKey:      strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		YouTubeEndpoint:    os.Getenv("YOUTUBE_API_ENDPOINT"),
		YouTubeMaxAttempts: getInt("YOUTUBE_MAX_ATTEMPTS", 1),
		YouTubeTimeout:     getDuration("YOUTUBE_TIMEOUT", DEFAULT_YOUTUBE_TIMEOUT),
		ValkeyAddress:      os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:     os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:          os.Getenv("VALKEY_TLS") == "true",
		MetadataCacheTTL:   getDuration("METADATA_CACHE_TTL", DEFAULT_METADATA_CACHE_TTL),
	}

	if s.YouTubeAPIKey == "" {
		slog.Error("[Config] YOUTUBE_API_KEY not found, /analizar/ will answer 503 until it is set")
	}
	if s.YouTubeMaxAttempts < 1 {
		s.YouTubeMaxAttempts = 1
	}

	return s
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key), slog.String("value", v), slog.Int("default", fallback))
		return fallback
	}
	return n
}

// getDuration accepts Go durations ("15s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	slog.Warn("[Config] Invalid duration, using default",
		slog.String("key", key), slog.String("value", v), slog.Duration("default", fallback))
	return fallback
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), DefaultCORSOrigins...)
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
