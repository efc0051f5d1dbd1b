package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/spendwise/internal/common"
)

func TestSuggestReturnsSuggestion(t *testing.T) {
	client := NewMockClient(`{"suggestedCategory": "Dining", "confidenceScore": 0.9}`)
	s := newSuggesterWithClient(client, nil)
	defer func() { _ = s.Close() }()

	suggestion, err := s.Suggest(context.Background(), "Dinner with friends")
	require.NoError(t, err)
	require.NotNil(t, suggestion)
	assert.Equal(t, "Dining", suggestion.Category)
	assert.InDelta(t, 0.9, suggestion.Confidence, 1e-9)
}

func TestSuggestEmptyDescriptionIsNoSuggestion(t *testing.T) {
	client := NewMockClient(`{"suggestedCategory": "Dining", "confidenceScore": 0.9}`)
	s := newSuggesterWithClient(client, nil)
	defer func() { _ = s.Close() }()

	suggestion, err := s.Suggest(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, suggestion)
	assert.Zero(t, client.Calls(), "blank input must not reach the provider")
}

func TestSuggestCachesByDescription(t *testing.T) {
	client := NewMockClient(`{"suggestedCategory": "Groceries", "confidenceScore": 0.8}`)
	s := newSuggesterWithClient(client, nil)
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	_, err := s.Suggest(ctx, "Weekly shop")
	require.NoError(t, err)

	// Cache lookups are case-insensitive on the description.
	_, err = s.Suggest(ctx, "WEEKLY SHOP")
	require.NoError(t, err)

	assert.Equal(t, 1, client.Calls())
	assert.Equal(t, 1, s.cache.size())
}

func TestSuggestMalformedResponseIsSingleShot(t *testing.T) {
	client := NewMockClient(
		"sorry, I cannot respond in JSON",
		`{"suggestedCategory": "Utilities", "confidenceScore": 0.7}`,
	)
	s := newSuggesterWithClient(client, nil)
	defer func() { _ = s.Close() }()

	suggestion, err := s.Suggest(context.Background(), "Electricity bill")
	require.Error(t, err)
	assert.Nil(t, suggestion)
	assert.ErrorIs(t, err, common.ErrSuggestionFailed)
	assert.Equal(t, 1, client.Calls(), "a malformed response must not trigger a second call")
}

func TestSuggestFailureIsGenericAndSingleShot(t *testing.T) {
	client := NewMockClient()
	client.FailWith(errors.New("connection refused"))
	s := newSuggesterWithClient(client, nil)
	defer func() { _ = s.Close() }()

	suggestion, err := s.Suggest(context.Background(), "Dinner with friends")
	require.Error(t, err)
	assert.Nil(t, suggestion)
	assert.ErrorIs(t, err, common.ErrSuggestionFailed)
	assert.Equal(t, 1, client.Calls(), "remote failures are not retried")
}

func TestNewSuggesterUnknownProvider(t *testing.T) {
	_, err := NewSuggester(Config{Provider: "pigeon"}, nil)
	assert.Error(t, err)
}
