package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/codewarden/codewarden/internal/report"
	"github.com/codewarden/codewarden/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)
)

// row pairs a table row with the finding and report it came from.
type entry struct {
	finding types.Finding
	report  types.FileReport
}

// Model is the findings browser: a table of findings with a detail pane
// showing highlighted source context for the selection.
type Model struct {
	table       table.Model
	detail      viewport.Model
	entries     []entry
	reports     []types.FileReport
	hideMatches bool
	status      string
	width       int
	height      int
	ready       bool
}

// NewModel builds the browser over an ordered report sequence.
func NewModel(reports []types.FileReport, hideMatches bool) Model {
	var entries []entry
	var rows []table.Row
	for _, rep := range reports {
		for _, f := range rep.Findings {
			entries = append(entries, entry{finding: f, report: rep})
			loc := rep.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", rep.Path, f.Line)
			}
			rows = append(rows, table.Row{string(f.Severity), f.Rule, loc, f.Message})
		}
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Severity", Width: 8},
			{Title: "Rule", Width: 16},
			{Title: "Location", Width: 40},
			{Title: "Message", Width: 48},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return Model{table: t, entries: entries, reports: reports, hideMatches: hideMatches}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles resize, navigation, and the copy/toggle/quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.detail = viewport.New(msg.Width-4, maxInt(msg.Height-m.table.Height()-6, 3))
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.hideMatches = !m.hideMatches
			m.status = "match display toggled"
		case "c":
			if e, ok := m.selected(); ok {
				m.status = copyFinding(e)
			}
		case "C":
			m.status = copyReport(m.reports)
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.ready {
		m.detail.SetContent(m.detailContent())
	}
	return m, cmd
}

func (m Model) selected() (entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[i], true
}

func (m Model) detailContent() string {
	e, ok := m.selected()
	if !ok {
		return emptyTextStyle.Render("no finding selected")
	}
	f := e.finding
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s/%s]\n", f.Message, f.Kind, f.Severity)
	if f.Match != "" {
		match := f.Match
		if m.hideMatches {
			match = report.MaskValue(match)
		}
		fmt.Fprintf(&b, "match: %s\n", match)
	}
	if f.Suggestion != "" {
		b.WriteString(suggestionStyle.Render("suggestion: "+f.Suggestion) + "\n")
	}
	for _, s := range e.report.Suggestions {
		b.WriteString(suggestionStyle.Render("file: "+s) + "\n")
	}
	if f.Line > 0 {
		b.WriteString("\n")
		b.WriteString(sourceContext(f.Path, f.Line, e.report.Language))
	}
	return b.String()
}

// sourceContext re-reads the file and returns a highlighted window of lines
// around the finding. Read errors degrade to an empty context.
func sourceContext(path string, line int, lang string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(data), "\n")
	start := maxInt(line-3, 1)
	end := minInt(line+3, len(lines))
	var b strings.Builder
	for n := start; n <= end; n++ {
		marker := "  "
		if n == line {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%4d  %s\n", marker, n, highlightLine(lines[n-1], lang))
	}
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("codewarden - %d findings in %d files", len(m.entries), len(m.reports))))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(emptyTextStyle.Width(m.width).Render("\nNo issues found ✅\n"))
	} else {
		b.WriteString(tableBorderStyle.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(detailBorderStyle.Render(m.detail.View()))
	}
	b.WriteString("\n")
	help := "↑/↓ navigate · c copy finding · C copy report · m toggle matches · q quit"
	if m.status != "" {
		help = m.status + "  ·  " + help
	}
	b.WriteString(statusStyle.Width(maxInt(m.width, 1)).Render(help))
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
