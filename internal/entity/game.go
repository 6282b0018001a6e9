package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// MaxTurns is the number of turns on a full board.
const MaxTurns = 9

// WinCombos lists every line of the board: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the whole state of one match. The board is flat-indexed
// 0-8, row = index/3 and column = index%3. Turn counts attempted moves,
// including moves that targeted an occupied cell.
type Game struct {
	Board  [9]string
	Player string
	Winner string
	Turn   int
	Over   bool
}

// NewGame returns a fresh game with an empty board and player X to move.
func NewGame() *Game {
	return &Game{
		Board:  [9]string{},
		Player: PlayerX,
		Winner: EmptyCell,
	}
}

// Line gathers the three cells of a combo so rows, columns and diagonals
// can all be inspected the same way.
func (that *Game) Line(combo [3]int) [3]string {
	return [3]string{that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]}
}

// IsComplete reports whether any line is fully occupied by a single mark.
func (that *Game) IsComplete() bool {
	for _, combo := range WinCombos {
		line := that.Line(combo)
		if lineIsComplete(line, PlayerX) || lineIsComplete(line, PlayerO) {
			return true
		}
	}

	return false
}

// IsTie reports whether all nine turns are spent. This is purely a
// turn-count check: a win on the ninth move also reports true, so
// callers must look at Winner to tell the outcomes apart.
func (that *Game) IsTie() bool {
	return that.Turn == MaxTurns
}

func (that *Game) IsFinished() bool {
	return that.Over
}

func lineIsComplete(line [3]string, mark string) bool {
	return line[0] == mark && line[1] == mark && line[2] == mark
}
