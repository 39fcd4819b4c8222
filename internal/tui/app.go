// Package tui provides the interactive Bubble Tea dashboard for stash.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/stash/internal/cli"
	"github.com/theirongolddev/stash/internal/engine"
	"github.com/theirongolddev/stash/internal/model"
	"github.com/theirongolddev/stash/internal/store"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config wires the dashboard to the document database.
type Config struct {
	DBPath   string
	Location *time.Location
	Tuning   engine.Tuning
	Currency string
}

// dataLoadedMsg is sent when a document (re)load finishes.
type dataLoadedMsg struct {
	doc   *model.Document
	today string
	err   error
}

// tickMsg drives the periodic refresh, the TUI's stand-in for the
// visibility-regain trigger.
type tickMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	cfg Config

	doc    *model.Document
	today  string
	err    error
	loaded bool

	selected int
	width    int
	height   int

	goalBar progress.Model
}

// NewApp constructs the dashboard.
func NewApp(cfg Config) App {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return App{cfg: cfg, goalBar: bar}
}

// Init kicks off the initial document load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), tickCmd())
}

// loadCmd loads the document and applies the rollover, persisting when a
// day closes.
func (a App) loadCmd() tea.Cmd {
	cfg := a.cfg
	return func() tea.Msg {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer func() { _ = st.Close() }()

		doc, err := st.Load()
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		today := engine.Today(cfg.Location)
		if engine.Rollover(doc, today) {
			if err := st.Save(doc); err != nil {
				return dataLoadedMsg{err: err}
			}
		}
		return dataLoadedMsg{doc: doc, today: today}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.err = msg.err
		if msg.err == nil {
			a.doc = msg.doc
			a.today = msg.today
			a.loaded = true
			if a.selected >= len(a.doc.Plans) {
				a.selected = 0
			}
		}
		return a, nil

	case tickMsg:
		return a, tea.Batch(a.loadCmd(), tickCmd())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "r":
			return a, a.loadCmd()
		case "up", "k":
			if a.selected > 0 {
				a.selected--
			}
		case "down", "j":
			if a.doc != nil && a.selected < len(a.doc.Plans)-1 {
				a.selected++
			}
		}
	}
	return a, nil
}

var (
	tuiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	tuiMutedStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	tuiAccent     = lipgloss.NewStyle().Foreground(cli.ColorAccent)
	tuiWarn       = lipgloss.NewStyle().Foreground(cli.ColorOrange)
	tuiErrStyle   = lipgloss.NewStyle().Foreground(cli.ColorRed)
	tuiCursor     = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
)

// View renders the dashboard.
func (a App) View() string {
	if a.err != nil {
		return "\n  " + tuiErrStyle.Render(fmt.Sprintf("error: %v", a.err)) + "\n\n  q to quit\n"
	}
	if !a.loaded {
		return "\n  Loading document...\n"
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(tuiTitleStyle.Render("STASH"))
	b.WriteString(tuiMutedStyle.Render("  " + a.today))
	b.WriteString("\n\n")

	if len(a.doc.Plans) == 0 {
		b.WriteString("  No plans yet. Create one with `stash plan add <name>`.\n")
	}

	for i, p := range a.doc.Plans {
		cursor := "  "
		if i == a.selected {
			cursor = tuiCursor.Render("> ")
		}

		line := fmt.Sprintf("%s%-16s %10s", cursor, truncate(p.Name, 16), a.money(p.TotalSaved))
		if p.Goal > 0 {
			pct := p.TotalSaved / p.Goal
			if pct < 0 {
				pct = 0
			}
			if pct > 1 {
				pct = 1
			}
			line += "  " + a.goalBar.ViewAs(pct) + "  " + tuiMutedStyle.Render("of "+a.money(p.Goal))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(a.doc.Plans) > 0 {
		b.WriteString("\n")
		b.WriteString(a.renderDetail(a.doc.Plans[a.selected]))
	}

	b.WriteString("\n  ")
	b.WriteString(tuiMutedStyle.Render(fmt.Sprintf("total %s   ↑/↓ select  r refresh  q quit", a.money(a.doc.TotalSavings))))
	b.WriteString("\n")
	return b.String()
}

// renderDetail shows day state, debt, and projection for one plan.
func (a App) renderDetail(p *model.Plan) string {
	var lines []string

	switch {
	case p.DayActive:
		left := p.DailyAllowance - p.DailySpent
		lines = append(lines, fmt.Sprintf("today: spent %s of %s (%s left), save %s",
			a.money(p.DailySpent), a.money(p.DailyAllowance), a.money(left), a.money(p.DailySavingsGoal)))
	case engine.IsExcluded(a.today, p.Exclusions):
		lines = append(lines, "today is excluded — no target accrues")
	default:
		lines = append(lines, "day not started — `stash day start`")
	}

	if p.PenaltyDebt > 0 {
		lines = append(lines, tuiWarn.Render(fmt.Sprintf("penalty debt %s", a.money(p.PenaltyDebt))))
	}

	if proj, ok := engine.ProjectCompletion(p, a.today, a.cfg.Tuning); ok {
		switch {
		case proj.GoalMet:
			lines = append(lines, tuiAccent.Render("goal met!"))
		case proj.Capped:
			lines = append(lines, tuiMutedStyle.Render("projection: beyond "+proj.Date))
		default:
			lines = append(lines, "projected completion "+tuiAccent.Render(proj.Date))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.ColorBorder).
		Padding(0, 1)

	return "  " + strings.ReplaceAll(box.Render(strings.Join(lines, "\n")), "\n", "\n  ") + "\n"
}

func (a App) money(v float64) string {
	return cli.FormatMoney(a.cfg.Currency, v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
