package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"concierge/internal/controller"
	"concierge/internal/session"
)

// App wraps the Bubble Tea program for one planning session.
type App struct {
	model  Model
	cancel context.CancelFunc
}

// NewApp builds the program model around an existing session and controller.
// The session context is cancelled when the program exits, which aborts any
// request still in flight.
func NewApp(state *session.State, ctrl *controller.Controller, currency string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		model:  NewModel(ctx, state, ctrl, currency),
		cancel: cancel,
	}
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	defer a.cancel()

	program := tea.NewProgram(a.model, tea.WithAltScreen())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		program.Send(tea.Quit())
	}()

	_, err := program.Run()
	return err
}
