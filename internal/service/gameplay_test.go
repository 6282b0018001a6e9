package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGamePlay(input string, out *bytes.Buffer) GamePlayService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGamePlayService(logger, terminal.NewReader(strings.NewReader(input)), terminal.NewRenderer(out, false))
}

func TestGamePlayService_Run(t *testing.T) {
	t.Run("Plays a full game to a win", func(t *testing.T) {
		// Given: scripted moves where X fills the left column
		var out bytes.Buffer
		gamePlay := newGamePlay("0\n1\n3\n2\n6\n", &out)

		// When: running the game
		game, err := gamePlay.Run(context.Background())
		require.NoError(t, err)

		// Then: X wins and the outcome is printed after the final board
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.True(t, game.Over)
		assert.Contains(t, out.String(), "Player X wins!")
	})

	t.Run("Plays a full game to a tie", func(t *testing.T) {
		// Given: scripted moves filling the board without a line
		var out bytes.Buffer
		gamePlay := newGamePlay("0\n1\n2\n4\n3\n5\n7\n6\n8\n", &out)

		// When: running the game
		game, err := gamePlay.Run(context.Background())
		require.NoError(t, err)

		// Then: the game ends in a tie
		assert.Equal(t, entity.EmptyCell, game.Winner)
		assert.True(t, game.IsTie())
		assert.Contains(t, out.String(), "It's a tie!")
	})

	t.Run("Rejected input re-prompts without consuming a turn", func(t *testing.T) {
		// Given: junk and an out-of-range index ahead of one valid move
		var out bytes.Buffer
		gamePlay := newGamePlay("banana\n20\n4\n", &out)

		// When: running the game until the script runs dry
		game, err := gamePlay.Run(context.Background())

		// Then: only the valid move reached the engine
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, 1, game.Turn)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid input"))
	})

	t.Run("Closed input aborts the game", func(t *testing.T) {
		// Given: no input at all
		var out bytes.Buffer
		gamePlay := newGamePlay("", &out)

		// When: running the game
		game, err := gamePlay.Run(context.Background())

		// Then: the loop stops before any turn is played
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, 0, game.Turn)
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		// Given: an already cancelled context
		var out bytes.Buffer
		gamePlay := newGamePlay("0\n", &out)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: running the game
		_, err := gamePlay.Run(ctx)

		// Then: the cancellation is surfaced
		assert.ErrorIs(t, err, context.Canceled)
	})
}
