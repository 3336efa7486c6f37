package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/config.yaml"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	EnvFile    string
}

// NewRootCommand creates the root command for the wxledger CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "wxledger",
		Short:         "WeatherLedger - weather oracle and prediction accuracy ledger",
		Long:          "Records oracle-submitted weather observations and tracks prediction accuracy per user and per location.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "optional .env file loaded before config")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewInvokeCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}
