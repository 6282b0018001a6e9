package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Renderer prints the board and game messages to a terminal.
type Renderer struct {
	out io.Writer

	xMark string
	oMark string
}

// NewRenderer builds a renderer writing to out. With colors enabled
// player X prints green and player O prints red.
func NewRenderer(out io.Writer, colors bool) *Renderer {
	xColor := color.New(color.FgGreen)
	oColor := color.New(color.FgRed)

	if !colors {
		xColor.DisableColor()
		oColor.DisableColor()
	}

	return &Renderer{
		out:   out,
		xMark: xColor.Sprint(entity.PlayerX),
		oMark: oColor.Sprint(entity.PlayerO),
	}
}

// RenderBoard prints the grid. Empty cells show their flat index so the
// operator knows what to type.
func (that *Renderer) RenderBoard(gameInstance *entity.Game) {
	for i, cell := range gameInstance.Board {
		switch cell {
		case entity.PlayerX:
			fmt.Fprintf(that.out, "%s ", that.xMark)
		case entity.PlayerO:
			fmt.Fprintf(that.out, "%s ", that.oMark)
		default:
			fmt.Fprintf(that.out, "%s ", strconv.Itoa(i))
		}

		if i%3 == 2 {
			fmt.Fprintln(that.out)
			fmt.Fprintln(that.out, "-----")
		}
	}
}

func (that *Renderer) RenderPrompt(gameInstance *entity.Game) {
	fmt.Fprintf(that.out, "Player %s, enter your move (0-8):\n", that.mark(gameInstance.Player))
}

func (that *Renderer) RenderInvalidInput() {
	fmt.Fprintln(that.out, "Invalid input, please enter a number between 0 and 8")
}

func (that *Renderer) RenderOutcome(gameInstance *entity.Game) {
	switch gameInstance.Winner {
	case entity.PlayerX, entity.PlayerO:
		fmt.Fprintf(that.out, "Player %s wins!\n", that.mark(gameInstance.Winner))
	default:
		fmt.Fprintln(that.out, "It's a tie!")
	}
}

func (that *Renderer) mark(player string) string {
	if player == entity.PlayerX {
		return that.xMark
	}

	return that.oMark
}
