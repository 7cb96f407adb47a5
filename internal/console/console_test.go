package console

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/mask"
	"github.com/robalobadob/wordle/apps/go-solver/internal/protocol"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// script feeds fixed lines and then reports end of input.
type script struct {
	lines   []string
	history []string
}

func (s *script) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func (s *script) AppendHistory(item string) { s.history = append(s.history, item) }

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func session(t *testing.T) *protocol.Session {
	t.Helper()
	d := words.NewDictionary(map[words.Word]uint64{
		words.MustParse("tares"): 50,
		words.MustParse("fight"): 30,
		words.MustParse("might"): 20,
		words.MustParse("sight"): 10,
	})
	s, err := protocol.NewSession("console", d)
	require.NoError(t, err)
	return s
}

func TestFeedbackPlain(t *testing.T) {
	noColor(t)
	assert.Equal(t, "TARES", Feedback(words.MustParse("tares"), mask.MustParse("#+-+#")))
	assert.Equal(t, "RIGHT", Word(words.MustParse("right")))
}

func TestFeedbackColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	out := Feedback(words.MustParse("tares"), mask.MustParse("#+---"))
	assert.Contains(t, out, C.Correct.Sprint("T"))
	assert.Contains(t, out, C.Misplaced.Sprint("A"))
	assert.Contains(t, out, C.Wrong.Sprint("S"))
}

func TestREPLSolves(t *testing.T) {
	noColor(t)
	in := &script{lines: []string{"", "nonsense here", "+---+"}}
	var out bytes.Buffer
	require.NoError(t, REPL(in, &out, session(t)))

	text := out.String()
	assert.Contains(t, text, "Suggested guess is: TARES")
	assert.Contains(t, text, "Error: Command not recognized.")
	assert.Contains(t, text, "Suggested guess is: SIGHT")
	assert.Equal(t, []string{"nonsense here", "+---+"}, in.history)
}

func TestREPLQuitAndRemaining(t *testing.T) {
	noColor(t)
	in := &script{lines: []string{"REMAINING", "quit", "HARD"}}
	var out bytes.Buffer
	s := session(t)
	require.NoError(t, REPL(in, &out, s))

	assert.Contains(t, out.String(), "fight might sight tares")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Len(t, in.lines, 1, "HARD must not be read after quit")
}

func TestREPLEndsWhenSolved(t *testing.T) {
	noColor(t)
	in := &script{lines: []string{"sight #####", "REMAINING"}}
	var out bytes.Buffer
	require.NoError(t, REPL(in, &out, session(t)))
	assert.Contains(t, out.String(), "Solved!")
	assert.Len(t, in.lines, 1)
}
