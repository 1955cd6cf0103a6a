package deck

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta holds presentation defaults from the front matter. Unset values
// leave the configuration untouched.
type Meta struct {
	Title      string   `yaml:"title"`
	Continuous *bool    `yaml:"continuous"`
	Ratio      *float64 `yaml:"ratio"`
	StartDeck  int      `yaml:"start_deck"`
	StartSlide int      `yaml:"start_slide"`
	Theme      string   `yaml:"theme"`
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// presentation body. A file without a closing delimiter has no front matter.
func splitFrontMatter(text string) (Meta, string, error) {
	var meta Meta
	if !strings.HasPrefix(text, slideSeparator+"\n") {
		return meta, text, nil
	}
	rest := text[len(slideSeparator)+1:]
	if strings.HasPrefix(rest, slideSeparator+"\n") {
		return meta, rest[len(slideSeparator)+1:], nil
	}
	end := strings.Index(rest, "\n"+slideSeparator+"\n")
	var block, body string
	switch {
	case end >= 0:
		block, body = rest[:end], rest[end+len(slideSeparator)+2:]
	case strings.HasSuffix(rest, "\n"+slideSeparator):
		block, body = strings.TrimSuffix(rest, "\n"+slideSeparator), ""
	default:
		return meta, text, nil
	}
	// Only a YAML mapping is front matter; anything else is a leading slide.
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return meta, text, nil
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return meta, text, nil
	}
	if err := doc.Decode(&meta); err != nil {
		return Meta{}, "", fmt.Errorf("decode front matter: %w", err)
	}
	return meta, body, nil
}
