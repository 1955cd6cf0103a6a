package deck

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer turns slide Markdown into styled terminal text. Output is
// cached per slide body and width.
type Renderer struct {
	style string

	mu       sync.Mutex
	width    int
	term     *glamour.TermRenderer
	rendered map[string]string
}

// NewRenderer returns a Renderer using the named glamour standard style
// ("dark", "light", "notty", ...). An empty style means "dark".
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, rendered: make(map[string]string)}
}

// Render renders body wrapped to width cells. When glamour fails the raw
// body is returned together with the error.
func (r *Renderer) Render(body string, width int) (string, error) {
	if width < 1 {
		width = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensure(width); err != nil {
		return body, err
	}
	if out, ok := r.rendered[body]; ok {
		return out, nil
	}
	out, err := r.term.Render(body)
	if err != nil {
		return body, fmt.Errorf("render slide: %w", err)
	}
	out = strings.Trim(out, "\n")
	r.rendered[body] = out
	return out, nil
}

// Reset drops cached output, for example after the presentation reloads.
func (r *Renderer) Reset() {
	r.mu.Lock()
	r.rendered = make(map[string]string)
	r.mu.Unlock()
}

func (r *Renderer) ensure(width int) error {
	if r.term != nil && r.width == width {
		return nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	r.term = tr
	r.width = width
	r.rendered = make(map[string]string)
	return nil
}
