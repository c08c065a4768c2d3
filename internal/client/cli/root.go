// Package cli implements accountctl, a command-line front end for the account
// registry. It hashes passwords locally with bcrypt, so only the hash ever
// reaches the server.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/client"
	"github.com/spf13/cobra"
)

// ServerEnv overrides the default server address.
const ServerEnv = "ACCOUNTCTL_SERVER"

const defaultServer = "localhost:50051"

// accountClient is the part of client.GRPCClient the commands use.
type accountClient interface {
	CreateAccount(ctx context.Context, a client.NewAccount) (string, error)
	GetAccountByEmail(ctx context.Context, email string) (*client.Account, error)
	Health(ctx context.Context) (string, error)
	Close() error
}

// newClient is a test seam for client.NewAccountRegistryClient.
var newClient = func(server string) (accountClient, error) {
	return client.NewAccountRegistryClient(server)
}

// Config holds global flags shared by all subcommands.
type Config struct {
	Server  string
	Timeout time.Duration
	Output  string
}

func DefaultConfig() *Config {
	server := os.Getenv(ServerEnv)
	if server == "" {
		server = defaultServer
	}
	return &Config{Server: server, Timeout: 10 * time.Second, Output: "text"}
}

// session carries the connected client from PersistentPreRunE to the
// subcommand being run.
type session struct {
	cfg    *Config
	client accountClient
}

// requestContext bounds a single RPC by the configured timeout.
func (s *session) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

func (s *session) output(cmd *cobra.Command) *Output {
	return NewOutput(s.cfg.Output, cmd.OutOrStdout())
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	s := &session{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "accountctl",
		Short: "CLI tool for the account registry",
		Long: `accountctl registers and looks up accounts in the account registry.

Passwords are read from the terminal and hashed with bcrypt before they are
sent; the server only ever stores the hash.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch s.cfg.Output {
			case "text", "json":
			default:
				return fmt.Errorf("unknown output format %q", s.cfg.Output)
			}
			c, err := newClient(s.cfg.Server)
			if err != nil {
				return fmt.Errorf("connect to %s: %w", s.cfg.Server, err)
			}
			s.client = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s.client == nil {
				return nil
			}
			return s.client.Close()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&s.cfg.Server, "server", s.cfg.Server, "Server address (env: "+ServerEnv+")")
	rootCmd.PersistentFlags().DurationVar(&s.cfg.Timeout, "timeout", s.cfg.Timeout, "Per-request timeout")
	rootCmd.PersistentFlags().StringVarP(&s.cfg.Output, "output", "o", s.cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newRegisterCmd(s))
	rootCmd.AddCommand(newGetCmd(s))
	rootCmd.AddCommand(newLoginCmd(s))
	rootCmd.AddCommand(newHealthCmd(s))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
