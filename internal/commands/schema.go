package commands

import (
	"github.com/spf13/cobra"
)

func newSchemaCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the ledger schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the ledger tables, failing if they already exist",
		Long: `Create the ledger tables in one transaction, failing if they already exist.

The schema is recorded as migration version 1, so running "migrate up"
afterwards has nothing to apply.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.service.Schema.InitializeSchema(cmd.Context()); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, map[string]bool{"initialized": true})
		},
	})

	return cmd
}
