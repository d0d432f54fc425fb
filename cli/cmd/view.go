package cmd

import (
	"context"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	logger "github.com/Subwoof01/sw-logger"
)

// View browses a log file interactively.
//
// The file is re-read on a short interval so new lines appear as they are
// written. Typed text narrows the display with fuzzy matching, and --filter
// applies a boolean expression over the parsed entries.
type View struct {
	File   string `arg:"" help:"Log file to view." type:"path"`
	Filter string `help:"Boolean expression selecting entries (variables: level, stamp, message, line)." optional:""`
	Tail   int    `default:"1000" help:"Maximum number of lines kept in memory."`
}

// Run starts the viewer and blocks until the user quits.
func (v *View) Run(ctx context.Context) error {
	filter, err := compileFilter(v.Filter)
	if err != nil {
		return err
	}

	m := viewModel{
		file:   v.File,
		limit:  v.Tail,
		filter: filter,
		input:  newFilterInput(),
	}

	_, err = tea.NewProgram(&m, tea.WithContext(ctx)).Run()

	return err
}

// pollInterval is how often the viewer re-reads the log file.
const pollInterval = 500 * time.Millisecond

// tickMsg triggers a re-read of the log file.
type tickMsg time.Time

// Styles.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
)

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "fuzzy filter"
	ti.Focus()

	return ti
}

// viewModel is the Bubble Tea model for the viewer.
type viewModel struct {
	input   textinput.Model
	filter  *filter
	file    string
	lines   []string
	readErr error
	limit   int
	width   int
	height  int
}

func (m *viewModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, reload(m.file, m.limit), tick())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reloadMsg carries the most recent read of the log file.
type reloadMsg struct {
	lines []string
	err   error
}

func reload(file string, limit int) tea.Cmd {
	return func() tea.Msg {
		lines, err := readTail(file, limit)

		return reloadMsg{lines: lines, err: err}
	}
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tickMsg:
		return m, tea.Batch(reload(m.file, m.limit), tick())

	case reloadMsg:
		m.lines = msg.lines
		m.readErr = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *viewModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.file))
	b.WriteString(hintStyle.Render("  (esc to quit)"))
	b.WriteString("\n")

	rows := m.visible()

	limit := m.height - 3
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.readErr != nil {
		b.WriteString(errorStyle.Render(m.readErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())

	return b.String()
}

// visible applies the --filter expression and the interactive fuzzy query,
// returning the styled rows to display.
func (m *viewModel) visible() []string {
	lines := make([]string, 0, len(m.lines))

	for _, line := range m.lines {
		if m.filter.match(line) {
			lines = append(lines, line)
		}
	}

	query := m.input.Value()
	if query == "" {
		rows := make([]string, len(lines))
		for i, line := range lines {
			rows[i] = styleLine(line)
		}

		return rows
	}

	matches := fuzzy.Find(query, lines)

	rows := make([]string, len(matches))
	for i, match := range matches {
		rows[i] = renderMatch(match)
	}

	return rows
}

// styleLine colors a line by the severity of its entry.
// Lines that do not parse are shown unstyled.
func styleLine(line string) string {
	entry, ok := logger.ParseEntry(line)
	if !ok {
		return line
	}

	switch entry.Level {
	case logger.LevelDebug:
		return debugStyle.Render(line)
	case logger.LevelInfo:
		return infoStyle.Render(line)
	case logger.LevelWarn:
		return warnStyle.Render(line)
	case logger.LevelError:
		return errorStyle.Render(line)
	default:
		return line
	}
}

// renderMatch highlights the runes of a fuzzy match within its line.
func renderMatch(match fuzzy.Match) string {
	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// readTail returns up to limit trailing lines of the file at path.
func readTail(path string, limit int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}

	lines := strings.Split(content, "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	return lines, nil
}
