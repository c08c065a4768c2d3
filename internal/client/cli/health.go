package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			st, err := s.client.Health(ctx)
			if err != nil {
				return err
			}

			s.output(cmd).PrintMessage(st)
			return nil
		},
	}
}
