package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/spendwise/internal/common"
	"github.com/Veraticus/spendwise/internal/model"
)

// Suggester maps a transaction description to an advisory category
// suggestion using a remote text-generation call. The call is
// single-shot: any failure surfaces immediately, never retried.
type Suggester struct {
	client      Client
	cache       *suggestionCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
}

// Config holds configuration for the suggestion service.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// NewSuggester creates a new suggestion service.
func NewSuggester(cfg Config, logger *slog.Logger) (*Suggester, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "anthropic":
		client, err = newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported suggestion provider: %s", cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion client: %w", err)
	}

	return &Suggester{
		client:      client,
		cache:       newSuggestionCache(cfg.CacheTTL),
		logger:      logger,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// newSuggesterWithClient wires a Suggester around an existing client. Used
// by tests.
func newSuggesterWithClient(client Client, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suggester{
		client:      client,
		cache:       newSuggestionCache(0),
		logger:      logger,
		rateLimiter: newRateLimiter(0),
	}
}

// Suggest returns a category suggestion for the description. A blank
// description yields a nil suggestion rather than an error; the caller is
// expected to reject empty input before invocation. The result is advisory
// and never applied to any collection by this service.
func (s *Suggester) Suggest(ctx context.Context, description string) (*model.Suggestion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}

	cacheKey := strings.ToLower(description)
	if suggestion, found := s.cache.get(cacheKey); found {
		s.logger.Debug("cache hit for description", "description", description)
		return &suggestion, nil
	}

	if err := s.rateLimiter.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	prompt := buildPrompt(description)

	// Single-shot by contract: the call is best-effort advisory, so any
	// failure surfaces to the caller rather than being retried.
	content, err := s.client.Suggest(ctx, prompt)
	if err != nil {
		s.logger.Warn("suggestion call failed",
			"error", err,
			"description", description)
		return nil, fmt.Errorf("%w: %v", common.ErrSuggestionFailed, err)
	}

	response, err := parseResponse(content)
	if err != nil {
		s.logger.Warn("malformed suggestion response",
			"error", err,
			"description", description)
		return nil, fmt.Errorf("%w: %v", common.ErrSuggestionFailed, err)
	}

	suggestion := model.Suggestion{
		Category:   response.SuggestedCategory,
		Confidence: response.ConfidenceScore,
	}
	s.cache.set(cacheKey, suggestion)

	s.logger.Info("description categorized",
		"description", description,
		"category", suggestion.Category,
		"confidence", suggestion.Confidence)

	return &suggestion, nil
}

// Close stops background goroutines and cleans up resources.
func (s *Suggester) Close() error {
	if s.cache != nil {
		s.cache.Close()
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Close()
	}
	return nil
}
