package cli

import (
	"fmt"
	"wxledger/internal/contract"
	"wxledger/internal/di"
	"wxledger/internal/models"
	"wxledger/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// InvokeOptions holds flags for the invoke command.
type InvokeOptions struct {
	*RootOptions
	Sender string
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvokeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoke <method> [args...]",
		Short: "Run one contract call against the ledger snapshot",
		Long: `Run one contract call against the ledger snapshot file.

The server must not be running on the same snapshot. Successful mutations are
saved before the command exits.

Example:
  wxledger invoke authorize-oracle oracle1 --sender CONTRACT_OWNER
  wxledger invoke add-weather-data "New York" 25 60 10 0 --sender oracle1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Sender, "sender", "s", "", "caller identity")

	return cmd
}

func invoke(opts *InvokeOptions, method string, args []string, cmd *cobra.Command) error {
	console, err := di.InitConsole(&structures.CliFlags{
		ConfigPath: opts.ConfigPath,
		EnvFile:    opts.EnvFile,
	})
	if err != nil {
		return fmt.Errorf("init console: %w", err)
	}
	defer console.Close()

	res, err := console.Invoke(method, args, models.Identity(opts.Sender))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func printResult(cmd *cobra.Command, res contract.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	if !res.Success {
		return fmt.Errorf("call failed: %s", res.Error)
	}
	return nil
}
