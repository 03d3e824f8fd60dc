package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	"github.com/yanqian/product-reviews/internal/domain/user"
	"github.com/yanqian/product-reviews/internal/infra/config"
	"github.com/yanqian/product-reviews/internal/infra/llm/chatgpt"
	"github.com/yanqian/product-reviews/internal/infra/llm/gemini"
	"github.com/yanqian/product-reviews/internal/infra/llm/tokenizer"
	"github.com/yanqian/product-reviews/internal/infra/postgres"
	"github.com/yanqian/product-reviews/internal/infra/productcache"
	"github.com/yanqian/product-reviews/internal/infra/productrepo"
	"github.com/yanqian/product-reviews/internal/infra/reviewrepo"
	"github.com/yanqian/product-reviews/internal/infra/userrepo"
)

// providePool returns nil when no DSN is configured or the database is
// unreachable; repositories then fall back to memory.
func providePool(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	noop := func() {}
	if strings.TrimSpace(cfg.Postgres.DSN) == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil, noop, nil
	}
	pool, err := postgres.Open(ctx, postgres.Config{
		DSN:      cfg.Postgres.DSN,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	})
	if err != nil {
		logger.Error("postgres unavailable, using memory repositories", "error", err)
		return nil, noop, nil
	}
	if cfg.Postgres.Migrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}
	logger.Info("postgres repositories enabled")
	return pool, pool.Close, nil
}

func provideUserRepository(pool *pgxpool.Pool) user.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideProductRepository(pool *pgxpool.Pool) catalog.Repository {
	if pool == nil {
		return productrepo.NewMemoryRepository()
	}
	return productrepo.NewPostgresRepository(pool)
}

func provideReviewRepository(pool *pgxpool.Pool, users user.Repository) review.Repository {
	if pool == nil {
		repo := reviewrepo.NewMemoryRepository(reviewrepo.UserAuthors{Users: users})
		if mem, ok := users.(*userrepo.MemoryRepository); ok {
			mem.OnDelete(repo.DeleteByUser)
		}
		return repo
	}
	return reviewrepo.NewPostgresRepository(pool)
}

func provideProductCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (catalog.Cache, func(), error) {
	noop := func() {}
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to lru cache", "error", err)
		} else if client, err := valkey.NewClient(opt); err != nil {
			logger.Error("failed to create valkey client, falling back to lru cache", "error", err)
		} else {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
				logger.Error("valkey ping failed, falling back to lru cache", "error", err)
				client.Close()
			} else {
				logger.Info("product valkey cache enabled", "addr", cfg.Cache.Valkey.Addr)
				return productcache.NewValkeyCache(client, "product", cfg.Cache.TTL), client.Close, nil
			}
		}
	}
	cache, err := productcache.NewLRUCache(cfg.Cache.Size)
	if err != nil {
		return nil, nil, err
	}
	return cache, noop, nil
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Cache.Valkey.Addr, "://") {
		return valkey.ParseURL(cfg.Cache.Valkey.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Cache.Valkey.Addr}}, nil
}

func provideUserConfig() user.Config {
	return user.Config{}
}

func provideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}
}

func provideLLM(ctx context.Context, cfg *config.Config) (summarizer.LLM, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, cfg.LLM.APIKey)
	default:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
		if err != nil {
			return nil, err
		}
		return chatgpt.NewCompleter(client), nil
	}
}

func provideTokenCounter(cfg *config.Config, logger *slog.Logger) summarizer.TokenCounter {
	return tokenizer.New(cfg.LLM.Model, logger)
}

func provideProductLookup(svc catalog.Service) review.ProductLookup { return svc }

func provideUserLookup(svc user.Service) review.UserLookup { return svc }

func provideProductFinder(svc catalog.Service) summarizer.ProductFinder { return svc }

func provideReviewLister(repo review.Repository) summarizer.ReviewLister { return repo }
