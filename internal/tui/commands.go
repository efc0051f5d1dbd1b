package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/spendwise/internal/model"
)

const suggestTimeout = 15 * time.Second

// suggestCmd requests an AI category suggestion for the description.
// The sequence number travels with the result so stale responses can
// be discarded.
func (m Model) suggestCmd(description string, seq int) tea.Cmd {
	suggester := m.suggester
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()

		suggestion, err := suggester.Suggest(ctx, description)
		return suggestionMsg{seq: seq, suggestion: suggestion, err: err}
	}
}

func (m Model) saveExpenseCmd(draft model.Expense) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		_, err := st.AddExpense(context.Background(), draft)
		return expenseSavedMsg{err: err}
	}
}

func (m Model) deleteExpenseCmd(id string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		err := st.DeleteExpense(context.Background(), id)
		return expenseDeletedMsg{err: err, id: id}
	}
}
