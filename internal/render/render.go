// Package render draws boards and results for terminal front ends.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type Palette struct {
	Cross  termenv.Color
	Circle termenv.Color
	Win    termenv.Color
	Loss   termenv.Color
	Draw   termenv.Color
	Dim    termenv.Color
	Info   termenv.Color
}

func DefaultPalette(out *termenv.Output) Palette {
	return Palette{
		Cross:  out.Color("#00FFFF"),
		Circle: out.Color("#FF00FF"),
		Win:    out.Color("#00AA55"),
		Loss:   out.Color("#AA0033"),
		Draw:   out.Color("#FFFF00"),
		Dim:    out.Color("#444444"),
		Info:   out.Color("#00FFFF"),
	}
}

type Renderer struct {
	out     *termenv.Output
	palette Palette
}

func New(out *termenv.Output) *Renderer {
	return &Renderer{out: out, palette: DefaultPalette(out)}
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

func (r *Renderer) Palette() Palette {
	return r.palette
}

// Styled text in given foreground color
func (r *Renderer) Styled(text string, color termenv.Color) string {
	return r.out.String(text).Foreground(color).String()
}

// Mark as a coloured 'X' or 'O', empty cells are blank
func (r *Renderer) Mark(m ttt.Mark) string {
	switch m {
	case ttt.Cross:
		return r.out.String("X").Foreground(r.palette.Cross).Bold().String()
	case ttt.Circle:
		return r.out.String("O").Foreground(r.palette.Circle).Bold().String()
	}
	return " "
}

// Board as a 3x3 grid, empty cells show their number (1-9) for input,
// a completed line is highlighted with the winner's color
func (r *Renderer) Board(b ttt.Board, human ttt.Mark) string {
	var highlight [ttt.BoardSize]bool
	var lineColor termenv.Color
	if line, ok := b.WinningLine(); ok {
		for _, pos := range line {
			highlight[pos] = true
		}
		lineColor = r.palette.Loss
		if b.At(line[0]) == human {
			lineColor = r.palette.Win
		}
	}

	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pos := ttt.PosType(row*3 + col)
			cell := r.out.String(fmt.Sprintf("%d", pos+1)).Foreground(r.palette.Dim).String()
			if m := b.At(pos); m != ttt.None {
				cell = r.Mark(m)
			}
			if highlight[pos] {
				cell = r.out.String(" " + b.At(pos).String() + " ").Background(lineColor).Bold().String()
			} else {
				cell = " " + cell + " "
			}

			builder.WriteString(cell)
			if col != 2 {
				builder.WriteString("|")
			}
		}
		builder.WriteByte('\n')
		if row != 2 {
			builder.WriteString("---+---+---\n")
		}
	}
	return builder.String()
}

// Result of a finished game from the human's point of view
func (r *Renderer) Result(term ttt.Termination, human ttt.Mark) string {
	switch {
	case term.State == ttt.Draw:
		return r.Styled("It's a draw!", r.palette.Draw)
	case term.WonBy(human):
		return r.Styled("You win!", r.palette.Win)
	case term.State == ttt.Won:
		return r.Styled("AI wins", r.palette.Loss)
	}
	return ""
}
