package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/spf13/cobra"
)

var operationShort = map[domain.OperationKind]string{
	domain.OperationDeposit:  "Wrap native coin into the token",
	domain.OperationWithdraw: "Unwrap the token back into native coin",
}

func newOperationCmd(app *app, kind domain.OperationKind) *cobra.Command {
	var account string
	var yes bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <amount>", kind),
		Short: operationShort[kind],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, err := app.openSession(cmd.Context(), sessionOptions{
				account: account,
				yes:     yes,
				in:      cmd.InOrStdin(),
				prompts: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer runtime.Close()

			submit := func(ctx context.Context) (domain.PendingOperation, error) {
				return runtime.workflow.Submit(ctx, application.SubmitCommand{Kind: kind, Input: args[0]})
			}

			var op domain.PendingOperation
			var opErr error
			if yes {
				current := func() domain.PendingOperation { return runtime.state.Operation(kind) }
				op, opErr = runOperationSpinner(cmd.Context(), cmd.ErrOrStderr(), kind, current, submit)
			} else {
				op, opErr = submit(cmd.Context())
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), describeOperation(op, runtime.network)); err != nil {
				return err
			}
			if opErr != nil {
				return opErr
			}

			return writeSnapshotOutput(cmd, app, runtime, runtime.state.Snapshot(), false)
		},
	}

	addSessionFlags(cmd, &account, &yes)

	return cmd
}

func describeOperation(op domain.PendingOperation, network domain.Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", op.Kind, op.Status.Label())
	if op.Reason != "" {
		fmt.Fprintf(&b, ": %s", op.Reason)
	}
	if len(op.TxHashes) > 0 {
		hashes := make([]string, 0, len(op.TxHashes))
		for _, hash := range op.TxHashes {
			hashes = append(hashes, string(hash))
		}
		fmt.Fprintf(&b, " (%s tx %s)", network.Name, strings.Join(hashes, ", "))
	}
	return b.String()
}
