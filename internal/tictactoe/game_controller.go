package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn applies one move for the active player.
//
// A move to an occupied cell places nothing but still burns the turn:
// the counter advances and the outcome check runs as if a mark had been
// placed. Spending every remaining turn this way forces a tie. The cell
// keeps the mark of whoever claimed it first.
func MakeTurn(gameInstance *entity.Game, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(gameInstance.Board) {
		return apperror.ErrInvalidCell
	}

	if gameInstance.Board[cell] == entity.EmptyCell {
		gameInstance.Board[cell] = gameInstance.Player
	}

	gameInstance.Turn++

	updateGameStatus(gameInstance)

	return nil
}

// updateGameStatus - checks the game status after a move. A win is
// checked before a tie, so a ninth move that completes a line still
// names a winner.
func updateGameStatus(gameInstance *entity.Game) {
	switch {
	case gameInstance.IsComplete():
		gameInstance.Winner = gameInstance.Player
		gameInstance.Over = true
	case gameInstance.IsTie():
		gameInstance.Over = true
	default:
		gameInstance.Player = toggleMark(gameInstance.Player)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}
