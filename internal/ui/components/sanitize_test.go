package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore"
	out := SanitizeOneLine(input)

	assert.False(t, strings.Contains(out, "\x1b"))
	assert.False(t, strings.Contains(out, "\n"))
	assert.False(t, strings.Contains(out, "\t"))
	assert.Equal(t, "click line more", out)
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	input := "safe\u202eexe.txt"
	out := SanitizeText(input)

	assert.NotContains(t, out, "\u202e")
}

func TestSanitizeTextKeepsNewlinesAndDropsCSI(t *testing.T) {
	out := SanitizeText("a\x1b[31mred\x1b[0m\nb")
	assert.Equal(t, "ared\nb", out)
}

func TestSanitizeOneLineTrimsAndCollapses(t *testing.T) {
	assert.Equal(t, "Buy milk", SanitizeOneLine("  Buy \n\n milk  "))
	assert.Equal(t, "", SanitizeOneLine(" \n\t "))
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", Ellipsize("short", 20))
	assert.Equal(t, "exactly twenty chars", Ellipsize("exactly twenty chars", 20))
	assert.Equal(t, "exactly twenty chars...", Ellipsize("exactly twenty chars!", 20))
	assert.Equal(t, "Купить молоко и хлеб...", Ellipsize("Купить молоко и хлеб завтра", 20))
	assert.Equal(t, "anything", Ellipsize("anything", 0))
	assert.Equal(t, "", Ellipsize("", 5))
}
