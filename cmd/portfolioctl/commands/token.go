package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	jwtmw "portfolio_backend/internal/platform/jwt"
)

var tokenSubject *string

func init() {
	tokenSubject = tokenCmd.Flags().String("subject", "portfolioctl", "The subject (client name) to put in the token.")
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token [--subject <name>]",
	Short: "Mints a bearer token for the API using PA_JWT_SECRET.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.AuthEnabled() {
			return errors.New("PA_JWT_SECRET is not set")
		}
		token, err := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration).GenerateToken(*tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
