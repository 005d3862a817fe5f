package commands

import (
	"context"
	"errors"

	"ItemKeeper/internal/cli/tui"
	"ItemKeeper/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

type uiCmd struct{}

func (uiCmd) Name() string        { return "ui" }
func (uiCmd) Description() string { return "Interactive list and form (default)" }
func (uiCmd) Usage() string       { return "ui" }

func (uiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app := tui.New(ctx, newClient(cfg), Logger)
	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	Logger.Infow("ui started", "server", cfg.ServerURL)
	_, err := p.Run()
	// interrupted by signal
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func init() { RegisterCmd(uiCmd{}) }
