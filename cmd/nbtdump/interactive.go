package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/nbt"
	"github.com/wippyai/nbt/errors"
	"github.com/wippyai/nbt/export"
	"github.com/wippyai/nbt/source"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeLines is the number of lines View uses around the entry list.
const chromeLines = 6

type browserModel struct {
	err         error
	root        *nbt.Compound
	filename    string
	start       string
	loader      source.Loader
	opts        []nbt.Option
	stack       []frame
	rows        []row
	filter      textinput.Model
	stats       nbt.Stats
	selected    int
	offset      int
	height      int
	compression source.Compression
	filtering   bool
	color       bool
}

// frame is one level of the path from the root to the node being shown.
type frame struct {
	node     nbt.Value
	name     string
	selected int
}

type row struct {
	value nbt.Value
	name  string
}

// newBrowserModel creates a browser for filename. A non-empty start is a
// dot path of the list or compound shown first.
func newBrowserModel(filename, start string, loader source.Loader, opts []nbt.Option, color bool) *browserModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter names"
	ti.Width = 40
	return &browserModel{
		filename: filename,
		start:    start,
		loader:   loader,
		opts:     opts,
		filter:   ti,
		height:   24,
		color:    color,
	}
}

type loadedMsg struct {
	err         error
	root        *nbt.Compound
	compression source.Compression
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *browserModel) loadFile() tea.Msg {
	data, c, err := m.loader.Load(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	root, err := nbt.DecodeWith(data, m.opts...)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{root: root, compression: c}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampOffset()

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.root
		m.compression = msg.compression
		m.stats = nbt.Summarize(msg.root)
		m.stack = []frame{{node: msg.root, name: m.filename}}
		m.refresh()
		if err := m.open(m.start); err != nil {
			m.err = err
		}

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.clampOffset()
			}

		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
				m.clampOffset()
			}

		case "enter", "right", "l":
			m.descend()

		case "backspace", "left", "h", "esc":
			m.ascend()

		case "/":
			if m.root != nil {
				m.filtering = true
				m.filter.Focus()
				return m, textinput.Blink
			}
		}
	}
	return m, nil
}

func (m *browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *browserModel) current() nbt.Value {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].node
}

// path returns the entry names from the root to the current node.
func (m *browserModel) path() []string {
	names := make([]string, 0, len(m.stack))
	for _, f := range m.stack[1:] {
		names = append(names, f.name)
	}
	return names
}

func (m *browserModel) refresh() {
	m.rows = m.rows[:0]
	query := strings.ToLower(m.filter.Value())
	add := func(name string, v nbt.Value) {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			m.rows = append(m.rows, row{name: name, value: v})
		}
	}
	switch node := m.current().(type) {
	case *nbt.Compound:
		node.Each(func(name string, v nbt.Value) bool {
			add(name, v)
			return true
		})
	case *nbt.List:
		for i, item := range node.Items {
			add(fmt.Sprint(i), item)
		}
	}
	if m.selected >= len(m.rows) {
		m.selected = max(len(m.rows)-1, 0)
	}
	m.clampOffset()
}

// open descends from the root along a dot path. Every segment must name a
// list or compound.
func (m *browserModel) open(path string) error {
	if path == "" {
		return nil
	}
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		next, err := nbt.LookupPath(m.root, segments[:i+1])
		if err != nil {
			return err
		}
		switch next.(type) {
		case *nbt.Compound, *nbt.List:
		default:
			return errors.TypeMismatch(errors.PhaseConfig, segments[:i+1], "Compound or List", next.Type().String())
		}
		for j, r := range m.rows {
			if r.name == seg {
				m.stack[len(m.stack)-1].selected = j
				break
			}
		}
		m.stack = append(m.stack, frame{node: next, name: seg})
		m.selected = 0
		m.offset = 0
		m.refresh()
	}
	return nil
}

func (m *browserModel) descend() {
	if m.selected >= len(m.rows) {
		return
	}
	r := m.rows[m.selected]
	switch r.value.(type) {
	case *nbt.Compound, *nbt.List:
	default:
		return
	}
	m.stack[len(m.stack)-1].selected = m.selected
	m.stack = append(m.stack, frame{node: r.value, name: r.name})
	m.filter.SetValue("")
	m.selected = 0
	m.offset = 0
	m.refresh()
}

func (m *browserModel) ascend() {
	if len(m.stack) <= 1 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.filter.SetValue("")
	m.selected = m.stack[len(m.stack)-1].selected
	m.refresh()
}

func (m *browserModel) visibleRows() int {
	return max(m.height-chromeLines, 1)
}

func (m *browserModel) clampOffset() {
	n := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+n {
		m.offset = m.selected - n + 1
	}
}

func (m *browserModel) render(style lipgloss.Style, s string) string {
	if !m.color {
		return s
	}
	return style.Render(s)
}

func (m *browserModel) View() string {
	if m.err != nil {
		return m.render(errorStyle, fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.root == nil {
		return "Loading " + m.filename + "..."
	}

	var b strings.Builder

	b.WriteString(m.render(titleStyle, "NBT Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	fmt.Fprintf(&b, " (%s, %d values, depth %d)\n", m.compression, m.stats.Values, m.stats.MaxDepth)

	path := m.path()
	if len(path) == 0 {
		b.WriteString("/")
	} else {
		b.WriteString(strings.Join(path, "."))
	}
	b.WriteString("  ")
	b.WriteString(m.render(typeStyle, export.Describe(m.current())))
	b.WriteString("\n\n")

	end := min(m.offset+m.visibleRows(), len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		if i == m.selected {
			b.WriteString(m.render(selectedStyle, "> "+r.name+": "+export.Describe(r.value)))
		} else {
			b.WriteString("  ")
			b.WriteString(m.render(nameStyle, r.name))
			b.WriteString(": ")
			b.WriteString(m.render(typeStyle, export.Describe(r.value)))
		}
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString("  (no entries)\n")
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(m.render(helpStyle, "↑/↓ select • enter open • backspace up • / filter • q quit"))

	return b.String()
}

func runInteractive(filename, start string, loader source.Loader, opts []nbt.Option, color bool) error {
	p := tea.NewProgram(newBrowserModel(filename, start, loader, opts, color), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
