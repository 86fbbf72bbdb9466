package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Rules struct {
		Path string `yaml:"path"`
	} `yaml:"rules"`
	Normalize struct {
		ASCIIOnly bool `yaml:"ascii_only"`
	} `yaml:"normalize"`
	Fuzzy struct {
		Enabled       bool    `yaml:"enabled"`
		MaxDistance   int     `yaml:"max_distance"`
		MinConfidence float64 `yaml:"min_confidence"`
	} `yaml:"fuzzy"`
	Embedding struct {
		Provider  string  `yaml:"provider"`
		Model     string  `yaml:"model"`
		Dim       int     `yaml:"dim"`
		OpenAIKey string  `yaml:"openai_key"`
		OllamaURL string  `yaml:"ollama_url"`
		Threshold float64 `yaml:"threshold"`
		MaxEdits  int     `yaml:"max_edits"`
	} `yaml:"embedding"`
	Cache struct {
		RedisURL string        `yaml:"redis_url"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() Config {
	var cfg Config
	cfg.HTTP.Addr = ":8090"
	cfg.Normalize.ASCIIOnly = true
	cfg.Fuzzy.MaxDistance = 5
	cfg.Fuzzy.MinConfidence = 0.8
	cfg.Embedding.Provider = "noop"
	cfg.Embedding.Dim = 256
	cfg.Embedding.Threshold = 0.72
	cfg.Embedding.MaxEdits = 4
	cfg.Cache.TTL = 24 * time.Hour
	cfg.Log.Level = "info"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MG_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("MG_RULES_PATH"); v != "" {
		cfg.Rules.Path = v
	}
	if v := os.Getenv("MG_ASCII_ONLY"); v != "" {
		cfg.Normalize.ASCIIOnly = parseBool(v, cfg.Normalize.ASCIIOnly)
	}
	if v := os.Getenv("MG_FUZZY_ENABLED"); v != "" {
		cfg.Fuzzy.Enabled = parseBool(v, cfg.Fuzzy.Enabled)
	}
	if v := os.Getenv("MG_FUZZY_MAX_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fuzzy.MaxDistance = n
		}
	}
	if v := os.Getenv("MG_FUZZY_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Fuzzy.MinConfidence = f
		}
	}
	if v := os.Getenv("MG_EMBED_PROVIDER"); v != "" {
		cfg.Embedding.Provider = v
	}
	if v := os.Getenv("MG_EMBED_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}
	if v := os.Getenv("MG_EMBED_DIM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Embedding.Dim = n
		}
	}
	if v := os.Getenv("MG_OPENAI_API_KEY"); v != "" {
		cfg.Embedding.OpenAIKey = v
	}
	if v := os.Getenv("MG_OLLAMA_URL"); v != "" {
		cfg.Embedding.OllamaURL = v
	}
	if v := os.Getenv("MG_EMBED_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Embedding.Threshold = f
		}
	}
	if v := os.Getenv("MG_EMBED_MAX_EDITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Embedding.MaxEdits = n
		}
	}
	if v := os.Getenv("MG_REDIS_URL"); v != "" {
		cfg.Cache.RedisURL = v
	}
	if v := os.Getenv("MG_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v := os.Getenv("MG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func parseBool(input string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
