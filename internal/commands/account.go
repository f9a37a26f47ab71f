package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
)

func newAccountCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register and inspect accounts",
	}

	cmd.AddCommand(
		newAccountRegisterCommand(opts),
		newAccountGetCommand(opts),
		newAccountListCommand(opts),
		newAccountTreeCommand(opts, "descendants", "List every account below name", func(a *app) accountTreeFunc {
			return a.service.Account.ListDescendants
		}),
		newAccountTreeCommand(opts, "ancestors", "List every account above name", func(a *app) accountTreeFunc {
			return a.service.Account.ListAncestors
		}),
	)
	return cmd
}

func newAccountRegisterCommand(opts *options) *cobra.Command {
	var increaseOn string

	cmd := &cobra.Command{
		Use:   "register <path>",
		Short: "Register a dot-separated account path such as Assets.Bank.Checking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := ledger.ParseIncreaseOn(increaseOn)
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			registered, err := a.service.Account.RegisterAccountPath(cmd.Context(), args[0], direction)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newPathView(registered))
		},
	}
	cmd.Flags().StringVar(&increaseOn, "increase-on", string(ledger.OnDebit), "side that increases new accounts: debit or credit")
	return cmd
}

func newAccountGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one account and its balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			acc, err := a.service.Account.GetAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newAccountView(*acc))
		},
	}
}

func newAccountListCommand(opts *options) *cobra.Command {
	var cursor service.AccountCursor

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			accounts, _, err := a.service.Account.ListAccounts(cmd.Context(), &cursor)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newAccountViews(accounts))
		},
	}
	cmd.Flags().IntVar(&cursor.Position, "position", 0, "number of accounts to skip")
	cmd.Flags().IntVar(&cursor.Limit, "limit", 0, "maximum accounts to return, 0 for the default")
	return cmd
}

type accountTreeFunc func(ctx context.Context, name string) ([]service.Account, error)

func newAccountTreeCommand(opts *options, use, short string, pick func(*app) accountTreeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			accounts, err := pick(a)(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newAccountViews(accounts))
		},
	}
}

func newAccountViews(accounts []service.Account) []accountView {
	views := make([]accountView, len(accounts))
	for i, acc := range accounts {
		views[i] = newAccountView(acc)
	}
	return views
}
