package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "weth",
		Short:         "weth: wrap and unwrap the native coin through the WETH contract",
		Long:          "weth connects a locally stored wallet to an Ethereum node, shows its native and wrapped balances, and deposits or withdraws through the wrapped-token contract.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.initLogger(cmd.ErrOrStderr(), verbose)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newWalletCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newOperationCmd(app, domain.OperationDeposit),
		newOperationCmd(app, domain.OperationWithdraw),
	)

	return rootCmd
}
