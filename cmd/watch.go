package cmd

import (
	"time"

	statusadapter "github.com/bnema/weth-cli/internal/adapters/render/status"
	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var account string
	var yes bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep balances refreshed until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			updates := make(chan application.Snapshot, 1)
			var state *application.SessionState

			runtime, err := app.openSession(cmd.Context(), sessionOptions{
				account:  account,
				yes:      yes,
				interval: interval,
				in:       cmd.InOrStdin(),
				prompts:  cmd.ErrOrStderr(),
				onPoll: func(domain.Session, error) {
					offerLatest(updates, state.Snapshot())
				},
			})
			if err != nil {
				return err
			}
			defer runtime.Close()
			state = runtime.state

			if err := runtime.sessions.Watch(cmd.Context()); err != nil {
				return err
			}

			return statusadapter.Watch(cmd.Context(), state.Snapshot(), updates, statusadapter.RenderOptions{
				AccountName: runtime.account.Name,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addSessionFlags(cmd, &account, &yes)
	cmd.Flags().DurationVar(&interval, "interval", 0, "Refresh interval (defaults to poll.interval)")

	return cmd
}

// offerLatest replaces any unread snapshot so the view never lags behind.
func offerLatest(updates chan application.Snapshot, snapshot application.Snapshot) {
	select {
	case updates <- snapshot:
		return
	default:
	}

	select {
	case <-updates:
	default:
	}

	select {
	case updates <- snapshot:
	default:
	}
}
