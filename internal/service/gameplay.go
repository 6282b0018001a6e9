package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type GamePlayService interface {
	Run(ctx context.Context) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	input    *terminal.Reader
	renderer *terminal.Renderer
}

func NewGamePlayService(logger *slog.Logger, input *terminal.Reader, renderer *terminal.Renderer) GamePlayService {
	return &gamePlayService{
		logger:   logger.With("component", "gameplay"),
		input:    input,
		renderer: renderer,
	}
}

// Run drives one game from the empty board to its outcome. Input the
// reader rejects as unparseable or out of range prints guidance and
// prompts again without consuming a turn; a broken input stream aborts
// the game.
func (that *gamePlayService) Run(ctx context.Context) (*entity.Game, error) {
	gameInstance := entity.NewGame()

	for !gameInstance.IsFinished() {
		if err := ctx.Err(); err != nil {
			return gameInstance, fmt.Errorf("game interrupted: %w", err)
		}

		that.renderer.RenderBoard(gameInstance)
		that.renderer.RenderPrompt(gameInstance)

		cell, err := that.input.ReadMove()
		if errors.Is(err, terminal.ErrNotANumber) || errors.Is(err, terminal.ErrOutOfRange) {
			that.logger.Debug("rejected move input", "error", err)
			that.renderer.RenderInvalidInput()

			continue
		}

		if err != nil {
			return gameInstance, fmt.Errorf("failed to read move: %w", err)
		}

		if err = tictactoe.MakeTurn(gameInstance, cell); err != nil {
			return gameInstance, fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Debug("turn played", "cell", cell, "turn", gameInstance.Turn)
	}

	that.renderer.RenderBoard(gameInstance)
	that.renderer.RenderOutcome(gameInstance)

	return gameInstance, nil
}
