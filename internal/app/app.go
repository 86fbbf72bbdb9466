// Package app wires configuration, rules, embedding provider and cache
// into ready-to-use normalisation options and a suggester.
package app

import (
	"log"

	"mailgroom/internal/config"
	"mailgroom/internal/embed"
	"mailgroom/internal/normalize"
	"mailgroom/internal/rules"
	"mailgroom/internal/suggest"
)

type App struct {
	Config    config.Config
	Options   normalize.Options
	Suggester *suggest.Suggester

	redisCache *suggest.RedisCache
}

// New builds an App from cfg. A rules file is optional; a missing path
// just means built-in tables only.
func New(cfg config.Config) (*App, error) {
	opts := normalize.DefaultOptions()
	opts.ASCIIOnly = cfg.Normalize.ASCIIOnly
	opts.Fuzzy.Enabled = cfg.Fuzzy.Enabled
	opts.Fuzzy.MaxDistance = cfg.Fuzzy.MaxDistance
	opts.Fuzzy.MinConfidence = cfg.Fuzzy.MinConfidence

	var extraCandidates []string
	if cfg.Rules.Path != "" {
		r, err := rules.Load(cfg.Rules.Path)
		if err != nil {
			return nil, err
		}
		opts.FixDomains = r.FixDomains
		opts.FixTlds = r.FixTlds
		opts.Blocklist = r.Blocklist
		opts.Fuzzy.Candidates = append(opts.Fuzzy.Candidates, r.Candidates...)
		extraCandidates = r.Candidates
	}

	a := &App{Config: cfg, Options: opts}

	provider := selectEmbedder(cfg)
	if provider != nil {
		cache, redisCache := selectCache(cfg)
		a.redisCache = redisCache
		a.Suggester = suggest.New(provider, cache, suggest.Options{
			Candidates: extraCandidates,
			Threshold:  cfg.Embedding.Threshold,
			MaxEdits:   cfg.Embedding.MaxEdits,
		})
	}

	return a, nil
}

// NormalizeSuggester adapts the suggester to the orchestrator's
// interface; nil when suggestions are disabled.
func (a *App) NormalizeSuggester() normalize.Suggester {
	if a.Suggester == nil {
		return nil
	}
	return a.Suggester
}

func (a *App) Close() error {
	if a.redisCache != nil {
		return a.redisCache.Close()
	}
	return nil
}

func selectEmbedder(cfg config.Config) embed.Provider {
	switch cfg.Embedding.Provider {
	case "openai":
		return embed.NewOpenAI(cfg.Embedding.OpenAIKey, cfg.Embedding.Model, cfg.Embedding.Dim)
	case "ollama":
		return embed.NewOllama(cfg.Embedding.OllamaURL, cfg.Embedding.Model, cfg.Embedding.Dim)
	case "noop":
		return embed.NewNoop(cfg.Embedding.Dim)
	default:
		return nil
	}
}

func selectCache(cfg config.Config) (suggest.Cache, *suggest.RedisCache) {
	if cfg.Cache.RedisURL == "" {
		return suggest.NewMemoryCache(), nil
	}
	rc, err := suggest.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
	if err != nil {
		log.Printf("redis cache unavailable, using memory: %v", err)
		return suggest.NewMemoryCache(), nil
	}
	return rc, rc
}
