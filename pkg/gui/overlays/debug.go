package overlays

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/theme"
	"folio/pkg/opener"
)

// maxLogLines caps how much of the log the viewer keeps in memory
const maxLogLines = 500

// DebugOverlay provides a full-screen scrollable view of the debug log
type DebugOverlay struct {
	viewport viewport.Model
	path     string
	styles   theme.Styles
	width    int
	height   int
}

// NewDebugOverlay creates a viewer for the log file at path
func NewDebugOverlay(path string, styles theme.Styles) *DebugOverlay {
	return &DebugOverlay{
		viewport: viewport.New(0, 0),
		path:     path,
		styles:   styles,
	}
}

// SetStyles switches the viewer to another theme
func (d *DebugOverlay) SetStyles(styles theme.Styles) {
	d.styles = styles
}

// SetSize updates the overlay dimensions
func (d *DebugOverlay) SetSize(width, height int) {
	d.width = width
	d.height = height

	// Leave some margin for the overlay
	d.viewport.Width = max(width-8, 1)   // margin, border and padding
	d.viewport.Height = max(height-10, 1) // margin, border, padding and header
}

// Refresh reloads the log and scrolls to its end
func (d *DebugOverlay) Refresh() {
	d.viewport.SetContent(strings.Join(d.readDebugLogFile(), "\n"))
	d.viewport.GotoBottom()
}

// Update handles messages for the debug overlay
func (d *DebugOverlay) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "L":
			return func() tea.Msg {
				return DebugOverlayClosedMsg{}
			}
		case "o":
			return d.openDebugLogFile()
		case "r":
			d.Refresh()
			return nil
		default:
			d.viewport, cmd = d.viewport.Update(msg)
		}
	default:
		d.viewport, cmd = d.viewport.Update(msg)
	}

	return cmd
}

// View renders the debug overlay
func (d *DebugOverlay) View() string {
	p := d.styles.Palette
	titleRow := d.styles.Title.Render("Debug Log Viewer") + " " + d.styles.Muted.Render("("+d.path+")")
	helpRow := d.styles.Body.Render("Use ↑/↓ to scroll • r to reload • o to open in editor • ESC to close")
	header := lipgloss.JoinVertical(lipgloss.Center, titleRow, helpRow)

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.BorderActive)).
		Padding(1, 2).
		Width(max(d.width-4, 1)).
		Height(max(d.height-4, 1))

	return overlayStyle.Render(header + "\n\n" + d.viewport.View())
}

// readDebugLogFile returns the last lines of the log
func (d *DebugOverlay) readDebugLogFile() []string {
	if d.path == "" {
		return []string{"Debug logging is disabled"}
	}
	file, err := os.Open(d.path)
	if err != nil {
		return []string{"Error: Could not open " + d.path}
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > maxLogLines {
			lines = lines[1:]
		}
	}

	if err := scanner.Err(); err != nil {
		return []string{"Error: Could not read " + d.path}
	}

	if len(lines) == 0 {
		return []string{"No debug logs available"}
	}

	return lines
}

// openDebugLogFile opens the debug log file in the default editor
func (d *DebugOverlay) openDebugLogFile() tea.Cmd {
	path := d.path
	return func() tea.Msg {
		// best effort, the viewer stays open either way
		_ = opener.Open(path)
		return nil
	}
}

// DebugOverlayClosedMsg indicates the debug overlay was closed
type DebugOverlayClosedMsg struct{}
