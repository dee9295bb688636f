package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"GiftStore/internal/auth"
	"GiftStore/internal/config"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

// storefront token: mint an admin token for the mutating admin routes.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin bearer token signed with ADMIN_JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.AdminGuardEnabled() {
			return errors.New("ADMIN_JWT_SECRET is not set; the admin guard is off")
		}

		ttl := cfg.Admin.TokenTTL
		if cmd.Flags().Changed("ttl") {
			ttl = tokenTTL
		}
		if ttl <= 0 {
			return errors.New("ttl must be positive")
		}

		tok, err := auth.NewTokenMaker(cfg.Admin.JWTSecret).New(tokenSubject, auth.RoleAdmin, ttl)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "token lifetime (overrides ADMIN_TOKEN_TTL)")
}
