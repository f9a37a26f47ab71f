package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/internal/service"
)

func newTransactionCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Post, query and delete transactions",
	}

	cmd.AddCommand(
		newTransactionPostCommand(opts),
		newTransactionGetCommand(opts),
		newTransactionListCommand(opts),
		newTransactionDeleteCommand(opts),
		newTransactionTagCommand(opts),
	)
	return cmd
}

type postFlags struct {
	amount      string
	currency    string
	date        string
	description string
	debit       string
	credit      string
	tags        []string
	attachments []string
}

// create turns the flags into a posting. Attachments are file paths, stored
// under their base name.
func (f *postFlags) create(now time.Time) (service.TransactionCreate, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return service.TransactionCreate{}, fmt.Errorf("invalid --amount %q: %w", f.amount, err)
	}

	date := now
	if f.date != "" {
		if date, err = parseDate(f.date); err != nil {
			return service.TransactionCreate{}, fmt.Errorf("invalid --date: %w", err)
		}
	}

	create := service.TransactionCreate{
		Date:          date,
		Amount:        amount,
		Currency:      f.currency,
		DebitAccount:  f.debit,
		CreditAccount: f.credit,
		Tags:          f.tags,
	}
	if f.description != "" {
		description := f.description
		create.Description = &description
	}

	for _, path := range f.attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return service.TransactionCreate{}, fmt.Errorf("reading attachment: %w", err)
		}
		create.Attachments = append(create.Attachments, service.Attachment{
			Name: filepath.Base(path),
			Data: data,
		})
	}
	return create, nil
}

func newTransactionPostCommand(opts *options) *cobra.Command {
	f := &postFlags{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a transaction moving an amount from the credit account to the debit account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			create, err := f.create(time.Now().UTC())
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			posted, err := a.service.Transaction.PostTransaction(cmd.Context(), create)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newTransactionView(*posted))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.amount, "amount", "", "positive decimal amount")
	flags.StringVar(&f.currency, "currency", "", "currency code")
	flags.StringVar(&f.date, "date", "", "transaction date, RFC 3339 or YYYY-MM-DD (default now)")
	flags.StringVar(&f.description, "description", "", "free-text description")
	flags.StringVar(&f.debit, "debit", "", "debit account name")
	flags.StringVar(&f.credit, "credit", "", "credit account name")
	flags.StringSliceVar(&f.tags, "tag", nil, "tag to attach, repeatable")
	flags.StringArrayVar(&f.attachments, "attach", nil, "file to attach, repeatable")
	for _, name := range []string{"amount", "currency", "debit", "credit"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newTransactionGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			tx, err := a.service.Transaction.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newTransactionView(*tx))
		},
	}
}

type listFlags struct {
	start   string
	end     string
	account string
}

// dateRange returns the parsed bounds, or ok false when neither is set.
func (f *listFlags) dateRange() (start, end time.Time, ok bool, err error) {
	if f.start == "" && f.end == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if f.start == "" || f.end == "" {
		return time.Time{}, time.Time{}, false, fmt.Errorf("--start and --end must be given together")
	}
	if start, err = parseDate(f.start); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("invalid --start: %w", err)
	}
	if end, err = parseDate(f.end); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("invalid --end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false, fmt.Errorf("--end is before --start")
	}
	return start, end, true, nil
}

func newTransactionListCommand(opts *options) *cobra.Command {
	f := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, optionally within an inclusive date range or for one account subtree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, ranged, err := f.dateRange()
			if err != nil {
				return err
			}
			if ranged && f.account != "" {
				return fmt.Errorf("--account cannot be combined with --start/--end")
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			var txs []service.Transaction
			switch {
			case ranged:
				txs, err = a.service.Transaction.GetByDateRange(cmd.Context(), start, end)
			case f.account != "":
				txs, err = a.service.Transaction.ListForAccount(cmd.Context(), f.account)
			default:
				txs, err = a.service.Transaction.ListTransactions(cmd.Context())
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newTransactionViews(txs))
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "range start, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(&f.end, "end", "", "range end, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(&f.account, "account", "", "only transactions touching this account or its descendants")
	return cmd
}

func newTransactionDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and reverse its effect on both balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			tx, err := a.service.Transaction.DeleteTransaction(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newTransactionView(*tx))
		},
	}
}

func newTransactionTagCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <tag>...",
		Short: "Add tags to a transaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			tx, err := a.service.Transaction.TagTransaction(cmd.Context(), id, args[1:])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, newTransactionView(*tx))
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid transaction id %q", s)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", s)
	}
	return t, nil
}
