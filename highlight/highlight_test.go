package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/craigmc08/tokenary/lexers"
	"github.com/craigmc08/tokenary/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper() lipgloss.Style {
	return lipgloss.NewStyle().Transform(strings.ToUpper)
}

func bracket() lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return "<" + s + ">" })
}

func TestRender(t *testing.T) {
	text := `{"name": true, "n": 1}`
	toks, err := lexers.JSON().Tokenize(text)
	require.NoError(t, err)

	h := New(map[scan.Kind]lipgloss.Style{
		lexers.String:  upper(),
		lexers.Boolean: bracket(),
	})
	assert.Equal(t, `{"NAME": <true>, "N": 1}`, h.Render(text, toks))
}

func TestRenderMultiline(t *testing.T) {
	text := "ab\tc\nd,e"
	toks, err := lexers.CSV().Tokenize(text)
	require.NoError(t, err)
	h := New(map[scan.Kind]lipgloss.Style{
		lexers.CSVValue:   bracket(),
		lexers.CSVNewline: bracket(),
	})
	assert.Equal(t, "<ab\tc>\n<d>,<e>", h.Render(text, toks))
}

func TestRenderSkipsBadTokens(t *testing.T) {
	h := New(map[scan.Kind]lipgloss.Style{"X": bracket()})
	toks := []scan.Token{
		{Kind: "X", Lexeme: "ab", Offset: 0},
		{Kind: "X", Lexeme: "b", Offset: 1},   // overlaps
		{Kind: "X", Lexeme: "dzz", Offset: 3}, // past the end
	}
	assert.Equal(t, "<ab>cd", h.Render("abcd", toks))
	assert.Equal(t, "plain", h.Render("plain", nil))
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles("A", "ERROR", "B")
	require.Len(t, styles, 3)
	assert.True(t, styles["ERROR"].GetBold())
	assert.Equal(t, lipgloss.Color("4"), styles["A"].GetForeground())
	assert.Equal(t, lipgloss.Color("2"), styles["B"].GetForeground())
}
