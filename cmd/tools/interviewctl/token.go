package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	config "github.com/xilidan/interview/config/interview"
	"github.com/xilidan/interview/pkg/jwt"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	var (
		userID int64
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the interview API",
		Long: `Signs a token for --user. The secret defaults to JWT_SECRET from the
environment or the file named by CONFIG_PATH (default .env).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errors.New("--user must be a positive id")
			}
			if secret == "" {
				path := os.Getenv("CONFIG_PATH")
				if path == "" {
					path = ".env"
				}
				cfg, err := config.Load(path)
				if err != nil {
					return err
				}
				secret = cfg.JWTSecret
			}
			if secret == "" {
				return errors.New("no secret: pass --secret or set JWT_SECRET")
			}

			token, err := jwt.GenerateWithTTL(cmd.Context(), userID, secret, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			return root.print(cmd.OutOrStdout(), map[string]any{
				"token":      token,
				"user_id":    userID,
				"expires_at": time.Now().Add(ttl).UTC().Format(time.RFC3339),
			})
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id to put in the subject claim")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
