// Package highlight renders tokenized text with terminal styles.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/craigmc08/tokenary/scan"
)

// Highlighter styles token spans by kind. Text between tokens and tokens of
// kinds without a style render as plain text.
type Highlighter struct {
	styles map[scan.Kind]lipgloss.Style
}

// New returns a Highlighter using styles. The map is copied.
func New(styles map[scan.Kind]lipgloss.Style) *Highlighter {
	h := &Highlighter{styles: make(map[scan.Kind]lipgloss.Style, len(styles))}
	for k, s := range styles {
		h.styles[k] = s.TabWidth(lipgloss.NoTabConversion)
	}
	return h
}

// Render returns text with every token's span styled. tokens must be sorted
// by offset and must not overlap, as Tokenize returns them; a token starting
// before the end of the previous one is rendered plain.
func (h *Highlighter) Render(text string, tokens []scan.Token) string {
	runes := []rune(text)
	w := new(strings.Builder)
	cursor := 0
	for _, tok := range tokens {
		start, end := tok.Offset, tok.End()
		if start < cursor || end > len(runes) {
			continue
		}
		w.WriteString(string(runes[cursor:start]))
		span := string(runes[start:end])
		if style, ok := h.styles[tok.Kind]; ok {
			w.WriteString(renderLines(style, span))
		} else {
			w.WriteString(span)
		}
		cursor = end
	}
	w.WriteString(string(runes[cursor:]))
	return w.String()
}

// renderLines styles each line of s on its own, leaving the line breaks
// unstyled.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

var palette = []lipgloss.Color{"4", "2", "3", "5", "6", "12", "10", "11", "13", "14"}

// DefaultStyles assigns colors to kinds in the order given. Kinds named
// ERROR are shown in bold red.
func DefaultStyles(kinds ...scan.Kind) map[scan.Kind]lipgloss.Style {
	styles := make(map[scan.Kind]lipgloss.Style, len(kinds))
	i := 0
	for _, k := range kinds {
		if strings.EqualFold(string(k), "error") {
			styles[k] = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
			continue
		}
		styles[k] = lipgloss.NewStyle().Foreground(palette[i%len(palette)])
		i++
	}
	return styles
}
