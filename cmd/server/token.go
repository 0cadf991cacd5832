package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sumbandila/internal/auth/token"
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Subject   string            `json:"subject"`
	ExpiresAt string            `json:"expires_at"`
	Usage     map[string]string `json:"usage"`
}

// tokenCmd mints a bearer token with the configured signing key, for local
// testing of /me without going through /signup and /token.
func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject    string
		ttl        time.Duration
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.IsProduction() {
				return errors.New("refusing to mint tokens in production")
			}
			if ttl <= 0 {
				ttl = c.cfg.Auth.TokenTTL
			}

			svc, err := token.NewJWTService(token.Config{
				SigningKey: c.cfg.Auth.JWTSigningKey,
				Algorithm:  c.cfg.Auth.JWTAlgorithm,
				Issuer:     c.cfg.Auth.JWTIssuer,
				TTL:        ttl,
			})
			if err != nil {
				return err
			}

			signed, expiresAt, err := svc.Issue(cmd.Context(), subject)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !jsonOutput {
				_, err = fmt.Fprintln(out, signed)
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tokenOutput{
				Token:     signed,
				Subject:   subject,
				ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
				Usage: map[string]string{
					"header": "Authorization: Bearer <token>",
				},
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "phone number to place in the sub claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default auth.token_ttl)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of the bare token")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
