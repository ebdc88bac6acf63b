package viewer

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	borderCol = lipgloss.Color("#243141")
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// TermBackend draws a braille wireframe in the terminal.
type TermBackend struct {
	mu      sync.Mutex
	program *tea.Program
}

// Name implements Backend
func (b *TermBackend) Name() string {
	return "term"
}

// Available reports ErrUnavailable when stdout is not a terminal
func (b *TermBackend) Available() error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("%w: stdout is not a terminal", ErrUnavailable)
	}
	return nil
}

// Show runs the terminal program until the user quits
func (b *TermBackend) Show(f Frame) error {
	p := tea.NewProgram(newTermModel(f), tea.WithAltScreen())

	b.mu.Lock()
	b.program = p
	b.mu.Unlock()

	_, err := p.Run()

	b.mu.Lock()
	b.program = nil
	b.mu.Unlock()

	if err != nil {
		return fmt.Errorf("terminal viewer failed: %w", err)
	}
	return nil
}

// Update swaps the displayed frame. Safe to call from any goroutine.
func (b *TermBackend) Update(f Frame) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p != nil {
		p.Send(frameMsg{frame: f})
	}
}

// Close stops the terminal program if it is running
func (b *TermBackend) Close() {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p != nil {
		p.Quit()
	}
}

type frameMsg struct {
	frame Frame
}

// termModel is the bubbletea model of the terminal viewer
type termModel struct {
	width  int
	height int

	frame  Frame
	camera *Camera
	styles []lipgloss.Style
}

func newTermModel(f Frame) termModel {
	return termModel{
		frame:  f,
		camera: NewCamera(f.Bounds),
		styles: collectionStyles(f),
	}
}

func collectionStyles(f Frame) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(f.Collections))
	for i, c := range f.Collections {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c.Style.Fill)))
	}
	return styles
}

func (m termModel) Init() tea.Cmd { return nil }

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		m.frame = msg.frame
		m.styles = collectionStyles(msg.frame)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left":
			m.camera.Rotate(-0.1, 0)
		case "right":
			m.camera.Rotate(0.1, 0)
		case "up":
			m.camera.Rotate(0, 0.1)
		case "down":
			m.camera.Rotate(0, -0.1)
		case "+", "=":
			m.camera.Zoom(-0.1)
		case "-", "_":
			m.camera.Zoom(0.1)
		case "r":
			m.camera = NewCamera(m.frame.Bounds)
		}
	}
	return m, nil
}

func (m termModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" " + m.frame.Title + " ")
	footer := dimStyle.Render("  ←→↑↓ rotate  +/- zoom  r reset  q quit")
	legend := m.renderLegend()

	// Border takes two cells in each direction
	mapW := m.width - lipgloss.Width(legend) - 3
	mapH := m.height - 4
	if mapW < 10 {
		mapW = 10
	}
	if mapH < 4 {
		mapH = 4
	}

	wire := boxStyle.Render(m.renderWireframe(mapW, mapH))
	body := lipgloss.JoinHorizontal(lipgloss.Top, wire, " ", legend)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderWireframe projects every polygon edge onto a braille grid of w x h cells
func (m termModel) renderWireframe(w, h int) string {
	br := newBrailleBuf(w, h)
	proj := m.camera.Projector(w*2, h*4)
	limit := float64(4 * (w + h) * 4)

	for ci, c := range m.frame.Collections {
		for _, poly := range c.Polygons {
			n := len(poly)
			for i := 0; i < n; i++ {
				x0, y0, _ := proj.Project(poly[i])
				x1, y1, _ := proj.Project(poly[(i+1)%n])
				if offscreen(x0, y0, limit) || offscreen(x1, y1, limit) {
					continue
				}
				br.drawLine(int(x0), int(y0), int(x1), int(y1), ci)
			}
		}
	}

	return strings.Join(br.lines(m.styles), "\n")
}

func (m termModel) renderLegend() string {
	rows := make([]string, 0, len(m.frame.Collections))
	for i, c := range m.frame.Collections {
		swatch := m.styles[i].Render("■")
		rows = append(rows, fmt.Sprintf("%s %s (%d)", swatch, c.Name, c.Len()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
