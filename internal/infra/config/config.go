package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// defaultModels is consulted when no model is configured for the provider.
var defaultModels = map[string]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGemini: "gemini-2.0-flash",
}

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Postgres PostgresConfig `yaml:"postgres"`
	Cache    CacheConfig    `yaml:"cache"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// LLMConfig selects and tunes the completion provider.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	Model       string        `yaml:"model"`
	MaxTokens   int           `yaml:"maxTokens"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// PostgresConfig contains DSN and pooling settings. An empty DSN selects the
// in-memory repositories.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
	Migrate  bool   `yaml:"migrate"`
}

// CacheConfig controls the product snapshot cache.
type CacheConfig struct {
	Valkey ValkeyConfig  `yaml:"valkey"`
	TTL    time.Duration `yaml:"ttl"`
	Size   int           `yaml:"size"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// CatalogConfig toggles startup seeding.
type CatalogConfig struct {
	Seed bool `yaml:"seed"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// lookup returns the first non-empty variable among keys.
func lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v, true
		}
	}
	return "", false
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func applyEnvOverrides(cfg *Config) error {
	var errs []error
	if v, ok := lookup("HTTP_ADDRESS"); ok {
		cfg.HTTP.Address = v
	} else if v, ok := lookup("PORT"); ok {
		cfg.HTTP.Address = ":" + v
	}
	if v, ok := lookup("HTTP_ALLOWED_ORIGINS"); ok {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("LLM_PROVIDER"); ok {
		cfg.LLM.Provider = strings.ToLower(v)
	}
	keys := []string{"LLM_API_KEY", "OPENAI_API_KEY"}
	if cfg.LLM.Provider == ProviderGemini {
		keys = []string{"LLM_API_KEY", "GEMINI_API_KEY"}
	}
	if v, ok := lookup(keys...); ok {
		cfg.LLM.APIKey = v
	}
	if v, ok := lookup("LLM_BASE_URL"); ok {
		cfg.LLM.BaseURL = v
	}
	if v, ok := lookup("LLM_MODEL", "OPENAI_MODEL"); ok {
		cfg.LLM.Model = v
	}
	errs = append(errs,
		envInt(&cfg.LLM.MaxTokens, "LLM_MAX_TOKENS", "OPENAI_MAX_TOKENS"),
		envFloat32(&cfg.LLM.Temperature, "LLM_TEMPERATURE", "OPENAI_TEMPERATURE"),
		envDuration(&cfg.LLM.Timeout, "LLM_TIMEOUT"),
	)
	if v, ok := lookup("POSTGRES_DSN"); ok {
		cfg.Postgres.DSN = v
	}
	errs = append(errs,
		envInt32(&cfg.Postgres.MaxConns, "POSTGRES_MAX_CONNS"),
		envInt32(&cfg.Postgres.MinConns, "POSTGRES_MIN_CONNS"),
	)
	if v, ok := lookup("POSTGRES_MIGRATE"); ok {
		cfg.Postgres.Migrate = parseBool(v)
	}
	if v, ok := lookup("CACHE_VALKEY_ENABLED"); ok {
		cfg.Cache.Valkey.Enabled = parseBool(v)
	}
	if v, ok := lookup("CACHE_VALKEY_ADDR"); ok {
		cfg.Cache.Valkey.Addr = v
	}
	errs = append(errs,
		envDuration(&cfg.Cache.TTL, "CACHE_TTL"),
		envInt(&cfg.Cache.Size, "CACHE_SIZE"),
	)
	if v, ok := lookup("CATALOG_SEED"); ok {
		cfg.Catalog.Seed = parseBool(v)
	}
	return errors.Join(errs...)
}

func envInt(dst *int, keys ...string) error {
	v, ok := lookup(keys...)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", keys[0], v)
	}
	*dst = parsed
	return nil
}

func envInt32(dst *int32, keys ...string) error {
	v, ok := lookup(keys...)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", keys[0], v)
	}
	*dst = int32(parsed)
	return nil
}

func envFloat32(dst *float32, keys ...string) error {
	v, ok := lookup(keys...)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", keys[0], v)
	}
	*dst = float32(parsed)
	return nil
}

func envDuration(dst *time.Duration, keys ...string) error {
	v, ok := lookup(keys...)
	if !ok {
		return nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not a duration", keys[0], v)
	}
	*dst = parsed
	return nil
}

// applyProviderDefaults fills the model for the selected provider.
func (c *Config) applyProviderDefaults() {
	if strings.TrimSpace(c.LLM.Model) == "" {
		c.LLM.Model = defaultModels[c.LLM.Provider]
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":3000",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   90 * time.Second,
			AllowedOrigins: []string{"http://localhost:3003"},
		},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			MaxTokens:   200,
			Temperature: 0.7,
			Timeout:     60 * time.Second,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
			Migrate:  true,
		},
		Cache: CacheConfig{
			TTL:  time.Hour,
			Size: 1024,
		},
		Catalog: CatalogConfig{
			Seed: true,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.apiKey is required (set LLM_API_KEY)")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.maxTokens must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	if c.Postgres.MinConns < 0 || c.Postgres.MaxConns < 0 {
		return errors.New("postgres connection limits cannot be negative")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	return nil
}
