// Package tui implements the interactive expense dashboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/spendwise/internal/model"
	"github.com/Veraticus/spendwise/internal/stats"
	"github.com/Veraticus/spendwise/internal/store"
)

// Suggester provides AI category suggestions. It may be backed by any
// provider; a nil Suggester disables the feature in the form.
type Suggester interface {
	Suggest(ctx context.Context, description string) (*model.Suggestion, error)
}

// Config holds the dependencies for the dashboard.
type Config struct {
	Store     *store.Store
	Suggester Suggester
	Logger    *slog.Logger
}

// State represents the current state of the TUI.
type State int

const (
	StateList State = iota
	StateAdd
	StateHelp
)

// Model holds the main TUI state.
type Model struct {
	suggester  Suggester
	store      *store.Store
	logger     *slog.Logger
	lastError  error
	status     string
	form       addForm
	expenses   []model.Expense
	table      table.Model
	keymap     KeyMap
	help       help.Model
	summary    stats.Summary
	width      int
	height     int
	suggestSeq int
	state      State
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		state:     StateList,
		store:     cfg.Store,
		suggester: cfg.Suggester,
		logger:    logger,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		table:     newExpenseTable(),
	}
	m.refreshCollections()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case collectionsChangedMsg:
		m.refreshCollections()
		return m, nil

	case suggestionMsg:
		// A stale sequence means the description changed while the
		// request was in flight; the result no longer applies.
		if msg.seq != m.suggestSeq || m.state != StateAdd {
			return m, nil
		}
		m.form.suggesting = false
		if msg.err != nil {
			m.logger.Warn("suggestion failed", "error", msg.err)
			m.form.suggestionNote = "suggestion unavailable"
			return m, nil
		}
		if msg.suggestion != nil {
			m.form.applySuggestion(*msg.suggestion)
		}
		return m, nil

	case expenseSavedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.state = StateList
		m.status = "expense saved"
		m.refreshCollections()
		return m, nil

	case expenseDeletedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "expense deleted"
		m.refreshCollections()
		return m, nil

	case errorMsg:
		m.lastError = msg.err
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateList:
		return m.updateList(msg)
	case StateAdd:
		return m.updateAdd(msg)
	case StateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keymap.Add):
			m.form = newAddForm(m.store.Categories())
			m.state = StateAdd
			m.status = ""
			return m, m.form.focusCmd()

		case key.Matches(keyMsg, m.keymap.Delete):
			if expense, ok := m.selectedExpense(); ok {
				return m, m.deleteExpenseCmd(expense.ID)
			}
			return m, nil

		case key.Matches(keyMsg, m.keymap.Refresh):
			m.refreshCollections()
			return m, nil

		case key.Matches(keyMsg, m.keymap.ToggleHelp):
			m.state = StateHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.ToggleHelp), key.Matches(keyMsg, m.keymap.Cancel):
			m.state = StateList
		case key.Matches(keyMsg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// refreshCollections reloads table rows and summary figures from the store.
func (m *Model) refreshCollections() {
	m.expenses = m.store.Expenses()
	m.summary = stats.Summarize(m.expenses, model.Today())

	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			e.Date.String(),
			e.Description,
			e.Category,
			"$" + e.Amount.StringFixed(2),
		})
	}
	m.table.SetRows(rows)
}

func (m Model) selectedExpense() (model.Expense, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return model.Expense{}, false
	}
	return m.expenses[idx], true
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	height := m.height - 10
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
	m.help.Width = m.width
}
