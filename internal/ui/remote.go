package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/brevity/internal/nav"
	"github.com/five82/brevity/internal/remote"
)

// remoteMsg carries a remote command into the event loop. reply is
// buffered so Update never blocks on a caller that gave up.
type remoteMsg struct {
	cmd   remote.Command
	reply chan nav.Result
}

// Dispatch returns a remote.Dispatcher that runs commands on the program
// behind send, usually (*tea.Program).Send.
func Dispatch(send func(tea.Msg)) remote.Dispatcher {
	return func(ctx context.Context, cmd remote.Command) (nav.Result, error) {
		msg := remoteMsg{cmd: cmd, reply: make(chan nav.Result, 1)}
		go send(msg)
		select {
		case res := <-msg.reply:
			return res, nil
		case <-ctx.Done():
			return nav.Result{}, fmt.Errorf("%w: %w", remote.ErrUnavailable, ctx.Err())
		}
	}
}
