package commands

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger-server/internal/storage/schema"
)

var errDownNotConfirmed = errors.New("migrate down drops every ledger table, pass --yes to confirm")

type migrateStep func(*migrate.Migrate) (*schema.MigrationStatus, error)

func newMigrateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the ledger schema migrations",
	}

	var confirmed bool
	down := newMigrateStepCommand(opts, "down", "Revert every migration", schema.MigrateDown)
	down.Flags().BoolVar(&confirmed, "yes", false, "confirm dropping every ledger table")
	down.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !confirmed {
			return errDownNotConfirmed
		}
		return nil
	}

	cmd.AddCommand(
		newMigrateStepCommand(opts, "up", "Apply every pending migration", schema.MigrateUp),
		down,
	)
	return cmd
}

func newMigrateStepCommand(opts *options, use, short string, step migrateStep) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			m, err := schema.NewMigrator(a.storage.DB)
			if err != nil {
				return err
			}

			status, err := step(m)
			if err != nil {
				a.logger.WithError(err).Error("Migrate." + use)
				return err
			}

			a.logger.WithFields(logrus.Fields{
				"preMigrationVersion":  status.PreVersion,
				"postMigrationVersion": status.PostVersion,
				"dirty":                status.Dirty,
			}).Info("Migration status")

			return writeOutput(cmd.OutOrStdout(), opts.output, newMigrationView(status))
		},
	}
}
