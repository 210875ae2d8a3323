// Package config loads runtime configuration from the environment. Missing
// required upstream coordinates (graph database, model credentials) are the
// one fatal error class: they fail Load rather than degrade at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Neo4jConfig holds graph database coordinates. URI, username and password
// are required.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

// RedisConfig holds durable session store coordinates. An empty URL selects
// the in-memory summary store.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// ModelConfig selects the generative model provider.
type ModelConfig struct {
	// Provider is "openai" or "anthropic".
	Provider string
	// Name overrides the provider's default model id when non-empty.
	Name string
	// Temperature for all calls; classification and synthesis want it low.
	Temperature float64
}

// Config aggregates all external collaborator coordinates.
type Config struct {
	Neo4j Neo4jConfig
	Redis RedisConfig
	Model ModelConfig
}

// Load reads configuration from the environment, sourcing a .env file first
// when one exists. It returns an error naming every missing required
// variable.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Neo4j: Neo4jConfig{
			URI:      os.Getenv("NEO4J_URI"),
			Username: os.Getenv("NEO4J_USER"),
			Password: os.Getenv("NEO4J_PASSWORD"),
			Database: os.Getenv("NEO4J_DATABASE"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Model: ModelConfig{
			Provider:    envOrDefault("MODEL_PROVIDER", "openai"),
			Name:        os.Getenv("MODEL_NAME"),
			Temperature: 0.1,
		},
	}

	if v := os.Getenv("SESSION_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_SECONDS %q", v)
		}
		cfg.Redis.TTL = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("MODEL_TEMPERATURE"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MODEL_TEMPERATURE %q", v)
		}
		cfg.Model.Temperature = temp
	}

	var missing []string
	if cfg.Neo4j.URI == "" {
		missing = append(missing, "NEO4J_URI")
	}
	if cfg.Neo4j.Username == "" {
		missing = append(missing, "NEO4J_USER")
	}
	if cfg.Neo4j.Password == "" {
		missing = append(missing, "NEO4J_PASSWORD")
	}
	switch cfg.Model.Provider {
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q (want openai or anthropic)", cfg.Model.Provider)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
