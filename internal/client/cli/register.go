package cli

import (
	"fmt"

	"github.com/dmitrijs2005/accountregistry/internal/client"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is a test seam; production uses bcrypt.DefaultCost.
var bcryptCost = bcrypt.DefaultCost

func newRegisterCmd(s *session) *cobra.Command {
	var (
		email, firstName, lastName string
		semester                   uint16
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := GetNewPassword(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer wipe(pw)

			hash, err := bcrypt.GenerateFromPassword(pw, bcryptCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			ctx, cancel := s.requestContext(cmd)
			defer cancel()

			id, err := s.client.CreateAccount(ctx, client.NewAccount{
				Email:        email,
				FirstName:    firstName,
				LastName:     lastName,
				PasswordHash: string(hash),
				Semester:     semester,
			})
			if err != nil {
				return err
			}

			s.output(cmd).PrintMessage("Registered account " + id)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().Uint16Var(&semester, "semester", 0, "Semester")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
