package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/Veraticus/spendwise/internal/config"
	"github.com/Veraticus/spendwise/internal/storage"
	"github.com/Veraticus/spendwise/internal/store"
	"github.com/Veraticus/spendwise/internal/suggest"
)

// initStore opens the database, runs migrations, and hydrates the
// in-memory store. The returned cleanup closes the database.
func initStore(ctx context.Context) (*store.Store, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/spendwise/spendwise.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = kv.Close() }

	if err := kv.Migrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := store.New(kv, slog.Default())
	if err := s.LoadOrSeed(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load collections: %w", err)
	}

	return s, cleanup, nil
}

// createSuggester builds the AI suggestion service from configuration.
func createSuggester() (*suggest.Suggester, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "openai"
	}

	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		switch provider {
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %s; set llm.api_key or the provider's environment variable", provider)
	}

	cfg := suggest.Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       viper.GetString("llm.model"),
		CacheTTL:    viper.GetDuration("llm.cache_ttl"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}

	return suggest.NewSuggester(cfg, slog.Default())
}
