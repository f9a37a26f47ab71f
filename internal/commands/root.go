package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

type options struct {
	envFile  string
	output   string
	logLevel string
}

func (o *options) validate() error {
	switch o.output {
	case outputYAML, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, want yaml or json", o.output)
	}
}

// NewRootCommand creates the ledgerctl command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Administer and query a double-entry ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "load configuration from this .env file")
	flags.StringVarP(&opts.output, "output", "o", outputYAML, "output format: yaml or json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	rootCmd.AddCommand(
		newMigrateCommand(opts),
		newSchemaCommand(opts),
		newAccountCommand(opts),
		newTransactionCommand(opts),
	)

	return rootCmd
}
