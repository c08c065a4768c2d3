package cli

import (
	"github.com/spf13/cobra"
)

func newGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <email>",
		Short: "Show the account registered under an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			acc, err := s.client.GetAccountByEmail(ctx, args[0])
			if err != nil {
				return err
			}

			s.output(cmd).PrintAccount(acc)
			return nil
		},
	}
}
