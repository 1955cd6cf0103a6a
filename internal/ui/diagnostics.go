package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/brevity/internal/logtail"
)

const diagnosticsLines = 200

type diagnosticsMsg struct {
	lines []string
	err   error
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		lines, err := logtail.Read(path, diagnosticsLines)
		return diagnosticsMsg{lines: lines, err: err}
	}
}

// diagnosticsModal shows runtime facts and the tail of the debug log.
type diagnosticsModal struct {
	theme    Theme
	facts    []string
	logPath  string
	logs     []string
	logErr   error
	loaded   bool
	viewport viewport.Model
}

func newDiagnosticsModal(theme Theme, facts []string, logPath string, width, height int) diagnosticsModal {
	d := diagnosticsModal{
		theme:    theme,
		facts:    facts,
		logPath:  logPath,
		viewport: viewport.New(diagnosticsSize(width, height)),
	}
	d.refresh()
	return d
}

func diagnosticsSize(width, height int) (int, int) {
	return max(width-10, 20), max(height-10, 5)
}

func (d *diagnosticsModal) setLogs(msg diagnosticsMsg) {
	d.logs = msg.lines
	d.logErr = msg.err
	d.loaded = true
	d.refresh()
	d.viewport.GotoBottom()
}

func (d *diagnosticsModal) refresh() {
	styles := d.theme.Styles().WithBackground(d.theme.SurfaceAlt)
	var b strings.Builder
	for _, f := range d.facts {
		b.WriteString(styles.Text.Render(f))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	switch {
	case d.logPath == "":
		b.WriteString(styles.MutedText.Render("Debug logging is off (start with --debug)"))
	case d.logErr != nil:
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("Read %s: %v", d.logPath, d.logErr)))
	case !d.loaded:
		b.WriteString(styles.MutedText.Render("Loading " + d.logPath))
	case len(d.logs) == 0:
		b.WriteString(styles.MutedText.Render("No log entries in " + d.logPath))
	default:
		for _, line := range d.logs {
			b.WriteString(formatLogLine(logtail.Parse(line), styles))
			b.WriteString("\n")
		}
	}
	d.viewport.SetContent(strings.TrimRight(b.String(), "\n"))
}

func formatLogLine(e logtail.Entry, styles Styles) string {
	if e.Level == "" {
		return styles.Text.Render(e.Raw)
	}
	ts := e.Time
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		ts = ts[i+1 : i+9]
	}
	level := styles.MutedText
	switch strings.ToUpper(e.Level) {
	case "ERROR":
		level = styles.DangerText
	case "WARN":
		level = styles.WarningText
	case "INFO":
		level = styles.InfoText
	}
	parts := []string{
		styles.FaintText.Render(ts),
		level.Render(fmt.Sprintf("%-5s", strings.ToUpper(e.Level))),
		styles.Text.Render(e.Message),
	}
	if e.Attrs != "" {
		parts = append(parts, styles.MutedText.Render(e.Attrs))
	}
	return strings.Join(parts, " ")
}

func (d diagnosticsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "D":
			return d, nil, true
		case "G", "end":
			d.viewport.GotoBottom()
			return d, nil, false
		case "home":
			d.viewport.GotoTop()
			return d, nil, false
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, false
}

func (d diagnosticsModal) View(theme Theme, width, height int) string {
	d.viewport.Width, d.viewport.Height = diagnosticsSize(width, height)

	styles := theme.Styles().WithBackground(theme.SurfaceAlt)
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Diagnostics"))
	b.WriteString("\n\n")
	b.WriteString(d.viewport.View())
	return placeModal(theme, width, height, width-4, b.String())
}
