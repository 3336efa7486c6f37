package cli

import (
	"errors"
	"fmt"
	"wxledger/internal/models"
	"wxledger/internal/providers"
	"wxledger/internal/structures"

	"github.com/spf13/cobra"
)

var ErrAuthDisabled = errors.New("auth is disabled in config")

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token <identity>",
		Short: "Issue a bearer token for an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := providers.NewConfigProvider(&structures.CliFlags{
				ConfigPath: rootOpts.ConfigPath,
				EnvFile:    rootOpts.EnvFile,
			})
			if err != nil {
				return err
			}
			if !conf.Auth.Enabled {
				return ErrAuthDisabled
			}

			token, err := providers.NewSenderProvider(conf).IssueToken(models.Identity(args[0]))
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
