package cli

import (
	"fmt"
	"wxledger/internal/di"
	"wxledger/internal/structures"

	"github.com/spf13/cobra"
)

type ServeOptions struct {
	*RootOptions
	Debug bool
}

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := di.InitApp(&structures.CliFlags{
				ConfigPath: opts.ConfigPath,
				EnvFile:    opts.EnvFile,
				DebugMode:  opts.Debug,
			})
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "mirror logs to the console")

	return cmd
}
