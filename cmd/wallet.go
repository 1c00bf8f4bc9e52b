package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/weth-cli/internal/adapters/wallet/keystore"
	"github.com/bnema/weth-cli/internal/application"
	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage wallets and their signing keys",
	}

	cmd.AddCommand(
		newWalletListCmd(app),
		newWalletImportCmd(app),
		newWalletRenameCmd(app),
		newWalletRemoveCmd(app),
	)

	return cmd
}

func newWalletListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.wallets.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no wallets configured")
				return err
			}

			for _, status := range statuses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", status.Account.ID, status.Account.Name, keyState(status))
			}

			return nil
		},
	}
}

func keyState(status application.WalletStatus) string {
	if status.HasSecret {
		return "key stored"
	}
	return "key missing"
}

func newWalletImportCmd(app *app) *cobra.Command {
	var name string
	var secretKey string
	var privateKey string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a private key and save it as a wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := privateKey
			if fromStdin {
				read, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = read
			}
			if strings.TrimSpace(raw) == "" {
				return errors.New("a private key is required: pass --private-key or --private-key-stdin")
			}

			address, err := keystore.AddressOf(raw)
			if err != nil {
				return err
			}

			account, err := app.wallets.Import(cmd.Context(), application.ImportWalletCommand{
				ID:          address,
				Name:        name,
				SecretKey:   secretKey,
				SecretValue: strings.TrimSpace(raw),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s)\n", account.DisplayName(), account.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Wallet name")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (defaults to weth/wallets/<address>/private_key)")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "Hex-encoded private key")
	cmd.Flags().BoolVar(&fromStdin, "private-key-stdin", false, "Read the private key from stdin")
	cmd.MarkFlagsMutuallyExclusive("private-key", "private-key-stdin")

	return cmd
}

func newWalletRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <address|name> <new-name>",
		Short: "Rename a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.wallets.Rename(cmd.Context(), account.ID, args[1])
		},
	}
}

func newWalletRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <address|name>",
		Short: "Remove a wallet and delete its signing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.resolveAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := app.wallets.Remove(cmd.Context(), application.RemoveWalletCommand{ID: account.ID}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", account.ID)
			return err
		},
	}
}

func readSecretLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read private key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
