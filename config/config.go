package config

import (
	"errors"
	"os"
	"time"
)

// Config holds everything the server reads from the environment. The
// AssemblyAI key is the only hard requirement; Mongo persistence and the
// Redis transcript cache are enabled only when their addresses are set.
type Config struct {
	Port      string
	UploadDir string

	AssemblyAIAPIKey string

	MongoURI string
	MongoDB  string

	RedisAddr string

	PollInterval time.Duration
	PollTimeout  time.Duration
	CacheTTL     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             envOrDefault("PORT", "5000"),
		UploadDir:        envOrDefault("UPLOAD_DIR", "uploads"),
		AssemblyAIAPIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          envOrDefault("MONGO_DB", "speech_to_text"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		PollInterval:     durationOrDefault("POLL_INTERVAL", 5*time.Second),
		PollTimeout:      durationOrDefault("POLL_TIMEOUT", 10*time.Minute),
		CacheTTL:         durationOrDefault("CACHE_TTL", 24*time.Hour),
	}

	if cfg.AssemblyAIAPIKey == "" {
		return nil, errors.New("ASSEMBLYAI_API_KEY environment variable is not set")
	}

	return cfg, nil
}

// PersistenceEnabled reports whether transcripts should be written to Mongo.
func (c *Config) PersistenceEnabled() bool { return c.MongoURI != "" }

func (c *Config) CacheEnabled() bool { return c.RedisAddr != "" }

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
