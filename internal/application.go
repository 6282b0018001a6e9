package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	input := terminal.NewReader(os.Stdin)
	renderer := terminal.NewRenderer(os.Stdout, conf.Colors)
	gamePlay := service.NewGamePlayService(logger, input, renderer)

	gameInstance, err := gamePlay.Run(ctx)
	if err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Debug("game finished", "winner", gameInstance.Winner, "turns", gameInstance.Turn)

	return nil
}
