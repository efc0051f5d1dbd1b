package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/spendwise/internal/cli"
	"github.com/Veraticus/spendwise/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 1)

	statBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Padding(0, 2)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)

	statValueStyle = lipgloss.NewStyle().
			Bold(true)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			Width(14)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(cli.PrimaryColor).
				Bold(true).
				Width(14)

	statusStyle = lipgloss.NewStyle().
			Foreground(cli.InfoColor).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(cli.WarningColor).
			Italic(true)
)

func newExpenseTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 36},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(cli.PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SubtleColor).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(cli.PrimaryColor).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAdd:
		return m.renderAdd()
	case StateHelp:
		return m.renderHelp()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(cli.WalletIcon + " SpendWise"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderSummary() string {
	boxes := []string{
		renderStat("Total Spent", "$"+m.summary.Total.StringFixed(2)),
		renderStat("This Month", "$"+m.summary.ThisMonth.StringFixed(2)),
		renderStat("This Year", "$"+m.summary.ThisYear.StringFixed(2)),
		renderStat("Average", "$"+m.summary.AverageTransaction.StringFixed(2)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderStat(label, value string) string {
	content := statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value)
	return statBoxStyle.Render(content)
}

func (m Model) renderAdd() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(cli.WalletIcon + " Add Expense"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormField(fieldDescription, "Description", m.form.description.View()))
	b.WriteString(m.renderFormField(fieldAmount, "Amount", m.form.amount.View()))
	b.WriteString(m.renderFormField(fieldDate, "Date", m.form.date.View()))
	b.WriteString(m.renderFormField(fieldCategory, "Category", m.renderCategoryPicker()))

	b.WriteString("\n")
	switch {
	case m.form.suggesting:
		b.WriteString(suggestionStyle.Render(cli.RobotIcon + " thinking..."))
		b.WriteString("\n")
	case m.form.suggestionNote != "":
		b.WriteString(suggestionStyle.Render(cli.RobotIcon + " " + m.form.suggestionNote))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("Tab next field • Enter save • Esc cancel"))
	return b.String()
}

func (m Model) renderFormField(field int, label, value string) string {
	style := formLabelStyle
	if m.form.focus == field {
		style = focusedLabelStyle
	}
	return style.Render(label) + " " + value + "\n"
}

func (m Model) renderCategoryPicker() string {
	cat, ok := m.form.selectedCategory()
	if !ok {
		return cli.SubtleStyle.Render("(no categories)")
	}

	picker := fmt.Sprintf("%s %s  (%d/%d)",
		model.IconGlyph(cat.Icon), cat.Name, m.form.catIndex+1, len(m.form.categories))
	if m.form.focus == fieldCategory {
		return picker + cli.SubtleStyle.Render("  ←/→ to change")
	}
	return picker
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(cli.SubtleStyle.Render("press ? or Esc to return"))
	return b.String()
}
