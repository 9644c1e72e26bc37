package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/prabalesh/procview/internal/collector"
	"github.com/prabalesh/procview/internal/models"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

type statsMsg models.SystemStats

const helpText = "↑/↓ k/j: select • PgUp/PgDn: page • Home/End g/G: top/bottom • r: reset rate • q: quit"

// tableChrome is the process table's header row plus its scroll line.
const tableChrome = 2

type App struct {
	collector   *collector.StatsCollector
	interval    time.Duration
	limit       int
	stats       models.SystemStats
	loaded      bool
	width       int
	height      int
	selectedRow int

	cpuProgress    progress.Model
	memoryProgress progress.Model
}

// NewApp returns a model that refreshes sc every interval and lists at most
// limit processes. A limit of zero lists every process.
func NewApp(sc *collector.StatsCollector, interval time.Duration, limit int) *App {
	return &App{
		collector:      sc,
		interval:       interval,
		limit:          limit,
		cpuProgress:    progress.New(progress.WithDefaultGradient()),
		memoryProgress: progress.New(progress.WithDefaultGradient()),
	}
}

func (a *App) Init() tea.Cmd {
	return a.updateStats()
}

// tick is only scheduled once a refresh has landed, so refreshes never overlap.
func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) updateStats() tea.Cmd {
	sc := a.collector
	return func() tea.Msg {
		return statsMsg(sc.Refresh())
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		progressWidth := max(10, min(50, a.width-20))
		a.cpuProgress.Width = progressWidth
		a.memoryProgress.Width = progressWidth
		return a, nil

	case tea.KeyMsg:
		last := len(a.stats.Procs.Processes) - 1
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "up", "k":
			a.selectedRow--
		case "down", "j":
			a.selectedRow++
		case "pgup", "ctrl+u":
			a.selectedRow -= a.visibleRows()
		case "pgdown", "ctrl+d":
			a.selectedRow += a.visibleRows()
		case "home", "g":
			a.selectedRow = 0
		case "end", "G":
			a.selectedRow = last
		case "r":
			a.collector.ClearCPUCache()
		}
		a.clampSelection()

	case tickMsg:
		return a, a.updateStats()

	case statsMsg:
		a.stats = models.SystemStats(msg)
		a.stats.Procs = a.stats.Procs.Top(a.limit)
		a.loaded = true
		a.clampSelection()
		return a, a.tick()
	}

	return a, nil
}

func (a *App) clampSelection() {
	a.selectedRow = min(a.selectedRow, len(a.stats.Procs.Processes)-1)
	a.selectedRow = max(a.selectedRow, 0)
}

// visibleRows is the number of process rows that fit below the header.
func (a *App) visibleRows() int {
	title, system, help := a.renderChrome()
	overhead := lipgloss.Height(title) + 1 + lipgloss.Height(system) + lipgloss.Height(help) +
		BaseStyle.GetVerticalFrameSize() + tableChrome
	return max(1, a.height-overhead)
}

func (a *App) renderChrome() (title, system, help string) {
	title = TitleStyle.Width(a.width).Render("procview")
	help = MutedStyle.Render(helpText)
	return title, a.renderSystem(), help
}

func (a *App) View() string {
	if a.width == 0 || !a.loaded {
		return "Loading..."
	}

	title, system, help := a.renderChrome()
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		system,
		a.renderProcesses(),
		help,
	)
}

func (a *App) renderSystem() string {
	s := a.stats
	field := func(label, value string) string {
		return fmt.Sprintf("%s %s", LabelStyle.Render(label), ValueStyle.Render(value))
	}

	cpu := fmt.Sprintf("%s since boot, %s last %s",
		Percent(s.CPU.Usage), Percent(s.CPU.IntervalUsage), a.interval)

	return BaseStyle.Width(a.width - 4).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render("System"),
			"",
			field("OS:", s.OS),
			field("Kernel:", s.Kernel),
			"",
			field("CPU:", cpu),
			a.cpuProgress.ViewAs(s.CPU.IntervalUsage),
			field("Memory:", Percent(s.Memory.Usage)),
			a.memoryProgress.ViewAs(s.Memory.Usage),
			"",
			field("Total Processes:", fmt.Sprint(s.Procs.Total)),
			field("Running Processes:", fmt.Sprint(s.Procs.Running)),
			field("Up Time:", ElapsedTime(s.Uptime)),
		),
	)
}

func (a *App) renderProcesses() string {
	procs := a.stats.Procs.Processes
	visibleRows := a.visibleRows()

	startIdx := 0
	if a.selectedRow >= visibleRows {
		startIdx = a.selectedRow - visibleRows + 1
	}
	endIdx := min(startIdx+visibleRows, len(procs))

	header := fmt.Sprintf("%-8s %-12s %7s %10s %10s %s",
		"PID", "USER", "CPU[%]", "RAM", "TIME+", "COMMAND")
	lines := []string{TableHeaderStyle.Render(header)}

	// PID + USER + CPU + RAM + TIME + separators
	usedWidth := 8 + 1 + 12 + 1 + 7 + 1 + 10 + 1 + 10 + 1
	// box border and padding plus row padding
	commandWidth := max(10, a.width-usedWidth-8)

	for i := startIdx; i < endIdx; i++ {
		proc := procs[i]
		row := fmt.Sprintf("%-8d %-12s %7.1f %10s %10s %s",
			proc.PID,
			truncateString(proc.User, 12),
			proc.CPU*100,
			FormatMemory(proc.Memory),
			ElapsedTime(proc.AgeSeconds),
			truncateString(proc.Command, commandWidth),
		)

		style := TableRowStyle
		if i == a.selectedRow {
			style = SelectedRowStyle
		}
		lines = append(lines, style.Render(row))
	}

	if len(procs) > visibleRows {
		lines = append(lines, MutedStyle.Italic(true).PaddingLeft(1).Render(
			fmt.Sprintf("Showing %d-%d of %d processes", startIdx+1, endIdx, len(procs))))
	}

	return BaseStyle.Width(a.width - 4).Render(strings.Join(lines, "\n"))
}
