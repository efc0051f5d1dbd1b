package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/spendwise/internal/model"
)

// Form field order.
const (
	fieldDescription = iota
	fieldAmount
	fieldDate
	fieldCategory
	fieldCount
)

// addForm collects a new expense. The category field cycles through the
// known categories; the AI suggestion pre-selects one when it matches.
type addForm struct {
	suggestion     *model.Suggestion
	suggestionNote string
	lastSuggested  string
	description    textinput.Model
	amount         textinput.Model
	date           textinput.Model
	categories     []model.Category
	catIndex       int
	focus          int
	suggesting     bool
}

func newAddForm(categories []model.Category) addForm {
	description := textinput.New()
	description.Placeholder = "What did you spend on?"
	description.CharLimit = 120

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.SetValue(model.Today().String())
	date.CharLimit = 10

	return addForm{
		description: description,
		amount:      amount,
		date:        date,
		categories:  categories,
	}
}

func (f *addForm) focusCmd() tea.Cmd {
	f.focus = fieldDescription
	return f.description.Focus()
}

// applySuggestion pre-selects the matching category, or records the raw
// suggestion as a note when no category matches.
func (f *addForm) applySuggestion(s model.Suggestion) {
	f.suggestion = &s
	if cat, ok := model.MatchCategory(s.Category, f.categories); ok {
		for i := range f.categories {
			if f.categories[i].ID == cat.ID {
				f.catIndex = i
				break
			}
		}
		f.suggestionNote = fmt.Sprintf("suggested %s (%.0f%% confident)", cat.Name, s.Confidence*100)
		return
	}
	f.suggestionNote = fmt.Sprintf("suggested %q (no matching category)", s.Category)
}

func (f *addForm) selectedCategory() (model.Category, bool) {
	if len(f.categories) == 0 {
		return model.Category{}, false
	}
	return f.categories[f.catIndex], true
}

// draft assembles the expense from the form fields. Validation happens
// in the store; this only parses.
func (f *addForm) draft() (model.Expense, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.amount.Value()))
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid amount %q", f.amount.Value())
	}

	date, err := model.ParseDate(strings.TrimSpace(f.date.Value()))
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid date %q", f.date.Value())
	}

	category, ok := f.selectedCategory()
	if !ok {
		return model.Expense{}, fmt.Errorf("no category selected")
	}

	return model.Expense{
		Description: strings.TrimSpace(f.description.Value()),
		Amount:      amount,
		Category:    category.Name,
		Date:        date,
	}, nil
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFormInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Cancel):
		m.state = StateList
		m.status = ""
		return m, nil

	case key.Matches(keyMsg, m.keymap.Next):
		return m.advanceFormFocus(1)

	case key.Matches(keyMsg, m.keymap.Prev):
		return m.advanceFormFocus(-1)

	case key.Matches(keyMsg, m.keymap.Submit):
		draft, err := m.form.draft()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.saveExpenseCmd(draft)
	}

	if m.form.focus == fieldCategory {
		switch keyMsg.String() {
		case "up", "k", "left", "h":
			if m.form.catIndex > 0 {
				m.form.catIndex--
			}
		case "down", "j", "right", "l":
			if m.form.catIndex < len(m.form.categories)-1 {
				m.form.catIndex++
			}
		}
		return m, nil
	}

	return m.updateFormInputs(msg)
}

// advanceFormFocus moves form focus by delta. Leaving the description
// field kicks off a suggestion request if the text changed since the
// last one.
func (m Model) advanceFormFocus(delta int) (tea.Model, tea.Cmd) {
	leavingDescription := m.form.focus == fieldDescription && delta > 0

	m.form.focus = (m.form.focus + delta + fieldCount) % fieldCount

	m.form.description.Blur()
	m.form.amount.Blur()
	m.form.date.Blur()

	var cmds []tea.Cmd
	switch m.form.focus {
	case fieldDescription:
		cmds = append(cmds, m.form.description.Focus())
	case fieldAmount:
		cmds = append(cmds, m.form.amount.Focus())
	case fieldDate:
		cmds = append(cmds, m.form.date.Focus())
	}

	description := strings.TrimSpace(m.form.description.Value())
	if leavingDescription && m.suggester != nil && description != "" && description != m.form.lastSuggested {
		m.form.lastSuggested = description
		m.form.suggesting = true
		m.form.suggestionNote = ""
		m.suggestSeq++
		cmds = append(cmds, m.suggestCmd(description, m.suggestSeq))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateFormInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := m.form.description.Value()
	m.form.description, cmd = m.form.description.Update(msg)
	cmds = append(cmds, cmd)

	// Editing the description invalidates any suggestion in flight.
	if m.form.description.Value() != before {
		m.suggestSeq++
		m.form.suggesting = false
	}

	m.form.amount, cmd = m.form.amount.Update(msg)
	cmds = append(cmds, cmd)

	m.form.date, cmd = m.form.date.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
