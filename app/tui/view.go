package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/umputun/jobfeed/app/ui"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	savedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	leavingStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dropdownStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginLeft(4)
	promptStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	toastStyles = map[ui.Severity]lipgloss.Style{
		ui.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1),
		ui.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Padding(0, 1),
	}
)

// View renders the model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("failed to load: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.snap.Cards) == 0:
		b.WriteString(metaStyle.Render("no jobs here"))
		b.WriteString("\n")
	default:
		b.WriteString(m.cards())
	}

	if m.prompt != promptNone {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.promptTitle + "\n" + m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) header() string {
	var title string
	var details []string
	if m.path == feedPath {
		title = "Job Feed"
		details = append(details, fmt.Sprintf("page %d/%d", m.query.Page, max(m.totalPages, 1)),
			humanize.Comma(int64(m.total))+" jobs")
		if m.query.Source != "" {
			details = append(details, "source: "+m.query.Source)
		}
		if m.query.Search != "" {
			details = append(details, fmt.Sprintf("search: %q", m.query.Search))
		}
		if m.query.Days > 0 {
			details = append(details, fmt.Sprintf("last %d days", m.query.Days))
		}
	} else {
		title = "Saved"
		list := m.savedList
		if list == "" {
			list = "all lists"
		}
		details = append(details, list, humanize.Comma(int64(m.total))+" jobs")
	}
	if m.stats != nil {
		details = append(details, fmt.Sprintf("%s saved of %s", humanize.Comma(int64(m.stats.SavedJobs)),
			humanize.Comma(int64(m.stats.TotalJobs))))
		if m.stats.LastScrape != nil && !m.stats.LastScrape.FinishedAt.IsZero() {
			details = append(details, "scraped "+humanize.Time(m.stats.LastScrape.FinishedAt))
		}
	}
	return titleStyle.Render(title) + "  " + headerStyle.Render(strings.Join(details, " · "))
}

func (m Model) cards() string {
	var b strings.Builder
	for i, card := range m.snap.Cards {
		j, ok := m.jobs[card.JobID]
		if !ok {
			j = job{ID: card.JobID, Title: "#" + card.JobID}
		}

		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		glyph := card.Glyph()
		if card.Saved {
			glyph = savedStyle.Render(glyph)
		}
		line := fmt.Sprintf("%s %s", glyph, j.Title)
		if j.Company != "" {
			line += " @ " + j.Company
		}
		if card.Leaving {
			line = leavingStyle.Render(line)
		}
		b.WriteString(pointer + line + "\n")
		b.WriteString("     " + metaStyle.Render(m.meta(j, card)) + "\n")

		if m.snap.OpenDropdown == card.JobID {
			b.WriteString(m.dropdown(card))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) meta(j job, card ui.Card) string {
	var parts []string
	for _, s := range []string{j.Location, j.Salary, j.Source} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if !j.Scraped.IsZero() {
		parts = append(parts, humanize.Time(j.Scraped))
	}
	if len(card.ListNames) > 0 {
		parts = append(parts, "in "+strings.Join(card.ListNames, ", "))
	}
	return strings.Join(parts, " · ")
}

func (m Model) dropdown(card ui.Card) string {
	lines := []string{"Save to:"}
	for i, l := range m.lists {
		if i >= 9 {
			break
		}
		mark := " "
		for _, name := range card.ListNames {
			if name == l.Name {
				mark = "✓"
			}
		}
		lines = append(lines, fmt.Sprintf("%d) %s %s (%d)", i+1, mark, l.Name, l.Count))
	}
	lines = append(lines, "n) + new list")
	return dropdownStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) footer() string {
	var b strings.Builder
	if m.snap.Toast.Visible {
		style, ok := toastStyles[m.snap.Toast.Severity]
		if !ok {
			style = toastStyles[ui.SeveritySuccess]
		}
		b.WriteString(style.Render(m.snap.Toast.Message))
		b.WriteString("\n")
	}
	if m.snap.Scrape.Loading {
		b.WriteString(m.spinner.View() + " scraping...\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		if m.snap.Scrape.Disabled && k.Help().Key == m.keys.Scrape.Help().Key {
			continue
		}
		help = append(help, helpLine(k))
	}
	b.WriteString(helpStyle.Render(strings.Join(help, "  ")))
	return b.String()
}

func helpLine(k key.Binding) string {
	h := k.Help()
	return h.Key + " " + h.Desc
}
