// Package tui is the interactive terminal dashboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rezmoss/watertrackcli/internal/history"
	"github.com/rezmoss/watertrackcli/internal/store"
)

const reloadEvery = 30 * time.Second

const invalidSettingsMsg = "Values must be greater than 0!"

// Tracker is the part of store.Store the dashboard drives.
type Tracker interface {
	Today() (store.Record, error)
	Recent(days int) ([]store.Record, error)
	AddWater(r *store.Record, useSip bool) error
	RemoveWater(r *store.Record) error
	UpdateSettings(r *store.Record, goal, glassSize int) error
}

const (
	fieldGoal = iota
	fieldGlass
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(reloadEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	tracker Tracker
	record  store.Record
	points  []history.Point
	days    int
	version string

	showHistory bool
	editing     bool
	inputs      []textinput.Model
	focus       int

	status    string
	statusErr bool

	width  int
	height int
}

// New loads today's record and returns a dashboard showing days of history.
func New(tracker Tracker, days int, version string) (Model, error) {
	rec, err := tracker.Today()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		tracker:     tracker,
		record:      rec,
		days:        days,
		version:     version,
		showHistory: true,
		inputs:      make([]textinput.Model, 2),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 6
		ti.Width = 10
		m.inputs[i] = ti
	}
	m.inputs[fieldGoal].Prompt = "Goal (ml):        "
	m.inputs[fieldGlass].Prompt = "Glass size (ml):  "
	m.refreshHistory()
	return m, nil
}

// Record is the record currently on screen.
func (m Model) Record() store.Record {
	return m.record
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateSettings(msg)
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "e", "d", "x":
			m.syncDay()
			m.apply(m.tracker.AddWater(&m.record, false), "")
		case "s":
			m.syncDay()
			m.apply(m.tracker.AddWater(&m.record, true), "")
		case "q", "a", "z":
			m.syncDay()
			m.apply(m.tracker.RemoveWater(&m.record), "")
		case "h":
			m.showHistory = !m.showHistory
			m.refreshHistory()
		case "g":
			return m.openSettings()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		// picks up a new day while the dashboard stays open
		if rec, err := m.tracker.Today(); err == nil {
			m.record = rec
			m.refreshHistory()
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) apply(err error, ok string) {
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = ok
	m.statusErr = false
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	if !m.showHistory {
		return
	}
	points, err := history.Get(m.tracker, m.days)
	if err != nil {
		m.status = fmt.Sprintf("history unavailable: %v", err)
		m.statusErr = true
		return
	}
	m.points = points
	if n := len(points); n > 0 && points[n-1].Date != m.record.Date {
		m.syncDay()
	}
}

// syncDay picks up the store's current record once the day has rolled over.
// Upserting the held record after that would append yesterday behind today.
func (m *Model) syncDay() {
	rec, err := m.tracker.Today()
	if err != nil {
		return
	}
	if rec.Date != m.record.Date {
		m.record = rec
	}
}

func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.syncDay()
	m.editing = true
	m.status = ""
	m.statusErr = false
	m.inputs[fieldGoal].SetValue(strconv.Itoa(m.record.Goal))
	m.inputs[fieldGlass].SetValue(strconv.Itoa(m.record.GlassSize))
	m.focus = fieldGoal
	m.inputs[fieldGlass].Blur()
	return m, m.inputs[fieldGoal].Focus()
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case "enter":
		goal, gerr := strconv.Atoi(strings.TrimSpace(m.inputs[fieldGoal].Value()))
		glass, serr := strconv.Atoi(strings.TrimSpace(m.inputs[fieldGlass].Value()))
		if gerr != nil || serr != nil || store.Validate(goal, glass) != nil {
			m.status = invalidSettingsMsg
			m.statusErr = true
			return m, nil
		}
		m.editing = false
		m.syncDay()
		m.apply(m.tracker.UpdateSettings(&m.record, goal, glass), "Settings saved")
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("💧 Water Tracker - %s", m.record.Date),
	)

	colWidth := m.width/2 - 3
	left := m.todayBox(colWidth)
	if m.editing {
		left = lipgloss.JoinVertical(lipgloss.Left, left, m.settingsBox(colWidth))
	}
	content := left
	if m.showHistory {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, m.historyBox(colWidth))
	}

	help := "e/d/x glass • s sip • q/a/z remove • g settings • h history • esc quit"
	if m.editing {
		help = "tab switch field • enter save • esc cancel"
	}
	footerText := help
	if m.version != "" {
		footerText += " • v" + m.version
	}
	footer := mutedStyle.Width(m.width).Render(footerText)

	parts := []string{header, content}
	if m.status != "" {
		st := goalMetStyle
		if m.statusErr {
			st = errorStyle
		}
		parts = append(parts, st.Render(m.status))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) todayBox(width int) string {
	r := m.record
	pct := history.Percent(r.Intake, r.Goal)
	level := history.Progress(r.Intake, r.Goal, history.DropLevels)

	amount := intakeStyle.Render(fmt.Sprintf("%s / %s ml", ml(r.Intake), ml(float64(r.Goal))))
	if r.Goal > 0 && r.Intake >= float64(r.Goal) {
		amount = goalMetStyle.Render(fmt.Sprintf("%s / %s ml ✓", ml(r.Intake), ml(float64(r.Goal))))
	}

	barWidth := max(20, width-10)
	return boxStyle.Width(width).Render(fmt.Sprintf(
		"TODAY\n\n%s\n\n%s %s\n%s\n\nGlass %s ml • Sip %s ml",
		amount,
		progressBar(pct, barWidth),
		progressStyle.Render(fmt.Sprintf("%d%%", pct)),
		dropGauge(level, history.DropLevels),
		ml(float64(r.GlassSize)),
		ml(r.SipSize),
	))
}

func (m Model) settingsBox(width int) string {
	var b strings.Builder
	b.WriteString("SETTINGS\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return boxStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) historyBox(width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LAST %d DAYS\n\n", m.days)

	top := history.Bounds(m.points, 0).Max
	barWidth := max(10, width-30)
	for _, p := range m.points {
		n := int(p.Intake / top * float64(barWidth))
		n = min(barWidth, max(0, n))
		bar := strings.Repeat("█", n)
		if p.Goal > 0 && p.Intake >= float64(p.Goal) {
			bar = goalMetStyle.Render(bar)
		} else {
			bar = intakeStyle.Render(bar)
		}
		fmt.Fprintf(&b, "%s %s %s\n", p.Date[min(5, len(p.Date)):], bar, mutedStyle.Render(ml(p.Intake)))
	}
	t := history.Summarize(m.points)
	fmt.Fprintf(&b, "\navg %s ml • goal met %d/%d", ml(t.Average), t.GoalMet, t.Days)
	return boxStyle.Width(width).Render(b.String())
}

func ml(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}
