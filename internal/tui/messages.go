package tui

import "github.com/Veraticus/spendwise/internal/model"

// Data refresh messages.
type collectionsChangedMsg struct{}

// Async operation messages. Suggestion results carry the request
// sequence so edits made while a request was in flight discard the
// stale result.
type suggestionMsg struct {
	err        error
	suggestion *model.Suggestion
	seq        int
}

type expenseSavedMsg struct {
	err error
}

type expenseDeletedMsg struct {
	err error
	id  string
}

// Error handling.
type errorMsg struct {
	err error
}
