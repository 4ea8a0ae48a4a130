package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func asciiRenderer() *Renderer {
	return New(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)))
}

func TestBoard(t *testing.T) {
	r := asciiRenderer()
	got := r.Board(ttt.MustFromNotation("x2/1o1/3"), ttt.Cross)
	want := " X | 2 | 3 \n" +
		"---+---+---\n" +
		" 4 | O | 6 \n" +
		"---+---+---\n" +
		" 7 | 8 | 9 \n"
	if got != want {
		t.Errorf("Board() =\n%s\nwant\n%s", got, want)
	}
}

func TestBoardWinningLine(t *testing.T) {
	r := asciiRenderer()
	got := r.Board(ttt.MustFromNotation("xxx/oo1/3"), ttt.Cross)
	if !strings.HasPrefix(got, " x | x | x \n") {
		t.Errorf("winning line not marked:\n%s", got)
	}
}

func TestResult(t *testing.T) {
	r := asciiRenderer()
	tests := []struct {
		term ttt.Termination
		want string
	}{
		{ttt.Termination{State: ttt.Draw}, "It's a draw!"},
		{ttt.Termination{State: ttt.Won, Winner: ttt.Circle}, "You win!"},
		{ttt.Termination{State: ttt.Won, Winner: ttt.Cross}, "AI wins"},
		{ttt.Termination{}, ""},
	}
	for _, tt := range tests {
		if got := r.Result(tt.term, ttt.Circle); got != tt.want {
			t.Errorf("Result(%v) = %q, want %q", tt.term, got, tt.want)
		}
	}
}
