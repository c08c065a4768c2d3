package cli

import (
	"errors"

	"github.com/dmitrijs2005/accountregistry/internal/client"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errors.New("invalid email or password")

func newLoginCmd(s *session) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check a password against the stored hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := GetPassword(cmd.ErrOrStderr(), "Enter password: ")
			if err != nil {
				return err
			}
			defer wipe(pw)

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			acc, err := s.client.GetAccountByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, client.ErrNotFound) {
					return errInvalidCredentials
				}
				return err
			}

			if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), pw); err != nil {
				return errInvalidCredentials
			}

			s.output(cmd).PrintMessage("Login OK, account " + acc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
