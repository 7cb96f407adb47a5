// apps/go-solver/internal/console/render.go
//
// Terminal rendering: words tinted by their feedback, status lines.
// Color is disabled automatically when stdout is not a terminal.

package console

import (
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// C is the palette shared by every console output.
var C = struct {
	Correct, Misplaced, Wrong, Plain *color.Color
	Info, Warn, Good, Bad, Header    *color.Color
}{
	Correct:   color.New(color.BgGreen, color.FgBlack, color.Bold),
	Misplaced: color.New(color.BgYellow, color.FgBlack, color.Bold),
	Wrong:     color.New(color.BgHiBlack, color.FgWhite),
	Plain:     color.New(color.FgHiWhite, color.Bold),
	Info:      color.New(color.FgCyan),
	Warn:      color.New(color.FgHiYellow),
	Good:      color.New(color.FgGreen),
	Bad:       color.New(color.FgRed),
	Header:    color.New(color.FgWhite, color.Bold),
}

// Word renders w in upper case with no feedback tint.
func Word(w words.Word) string {
	return C.Plain.Sprint(strings.ToUpper(w.String()))
}

// Feedback renders each letter of w tinted by the matching mask position.
func Feedback(w words.Word, m mask.Mask) string {
	var b strings.Builder
	for i, c := range m {
		letter := strings.ToUpper(string(w[i]))
		switch c {
		case mask.Correct:
			b.WriteString(C.Correct.Sprint(letter))
		case mask.Misplaced:
			b.WriteString(C.Misplaced.Sprint(letter))
		default:
			b.WriteString(C.Wrong.Sprint(letter))
		}
	}
	return b.String()
}

// History renders one line per guess.
func History(h []mask.Guess) string {
	lines := make([]string, 0, len(h))
	for _, g := range h {
		lines = append(lines, Feedback(g.Word, g.Mask))
	}
	return strings.Join(lines, "\n")
}
