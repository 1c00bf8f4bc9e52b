package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/weth-cli/internal/adapters/render/status"
	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var account string
	var yes bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Connect a wallet and show its native and wrapped balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			return writeSnapshotOutput(cmd, app, runtime, runtime.state.Snapshot(), asJSON)
		},
	}

	addSessionFlags(cmd, &account, &yes)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}

func addSessionFlags(cmd *cobra.Command, account *string, yes *bool) {
	cmd.Flags().StringVar(account, "account", "", "Wallet address or name (defaults to the only configured wallet)")
	cmd.Flags().BoolVarP(yes, "yes", "y", false, "Approve the connection and every transaction without asking")
}

func writeSnapshotOutput(cmd *cobra.Command, app *app, runtime *sessionRuntime, snapshot application.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newSnapshotOutput(snapshot, runtime.account))
	}

	rendered, err := app.statusRenderer(snapshot, statusadapter.RenderOptions{
		Now:         app.now(),
		AccountName: runtime.account.Name,
		ShowTxs:     true,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

type snapshotOutput struct {
	Network       string          `json:"network"`
	ChainID       string          `json:"chain_id,omitempty"`
	Token         string          `json:"token"`
	Symbol        string          `json:"symbol"`
	Account       string          `json:"account"`
	Name          string          `json:"name,omitempty"`
	NativeBalance string          `json:"native_balance"`
	TokenBalance  string          `json:"token_balance"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
	Stale         bool            `json:"stale"`
	Deposit       operationOutput `json:"deposit"`
	Withdraw      operationOutput `json:"withdraw"`
}

type operationOutput struct {
	Status    domain.OperationStatus `json:"status"`
	Reason    string                 `json:"reason,omitempty"`
	ErrorKind domain.ErrorKind       `json:"error_kind,omitempty"`
	TxHashes  []domain.TxHash        `json:"tx_hashes,omitempty"`
}

func newSnapshotOutput(snapshot application.Snapshot, account domain.Account) snapshotOutput {
	network := snapshot.Network
	session := snapshot.Session

	out := snapshotOutput{
		Network:       network.Name,
		Token:         string(network.TokenAddress),
		Symbol:        network.TokenSymbol,
		Account:       string(session.AccountID),
		Name:          account.Name,
		NativeBalance: session.NativeBalance.Display(network.Decimals),
		TokenBalance:  session.TokenBalance.Display(network.Decimals),
		Stale:         snapshot.Stale,
		Deposit:       newOperationOutput(snapshot.Deposit),
		Withdraw:      newOperationOutput(snapshot.Withdraw),
	}
	if network.ChainID != nil {
		out.ChainID = network.ChainID.String()
	}
	if !session.UpdatedAt.IsZero() {
		updated := session.UpdatedAt.UTC()
		out.UpdatedAt = &updated
	}

	return out
}

func newOperationOutput(op domain.PendingOperation) operationOutput {
	return operationOutput{
		Status:    op.Status,
		Reason:    op.Reason,
		ErrorKind: op.ErrorKind,
		TxHashes:  op.TxHashes,
	}
}
