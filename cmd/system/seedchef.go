package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hemobank/hemobank_backend/config"
	entchef "github.com/hemobank/hemobank_backend/internal/repo/chefservice"
	"github.com/hemobank/hemobank_backend/pkg/database"
	"github.com/hemobank/hemobank_backend/pkg/util/password"
)

// NewSeedChefCommand creates the bootstrap chef account. Idempotent by
// username: an existing account is left untouched.
func NewSeedChefCommand() *cobra.Command {
	var (
		firstName string
		lastName  string
		username  string
		email     string
		pw        string
	)

	cmd := &cobra.Command{
		Use:   "seed-chef",
		Short: "Create the initial chef service account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if username == "" || email == "" || pw == "" {
				return fmt.Errorf("--username, --email and --password are required")
			}
			minLen := cfg.Authentication.MinPasswordLength
			if minLen <= 0 {
				minLen = 6
			}
			if len(pw) < minLen {
				return fmt.Errorf("password must be at least %d characters", minLen)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			exists, err := client.ChefService.Query().
				Where(entchef.Username(username)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check existing account: %w", err)
			}
			if exists {
				fmt.Printf("Chef account %q already exists, nothing to do.\n", username)
				return nil
			}

			hash, err := password.HashWithParams(pw, password.FromCentralConfig(cfg.Password))
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			chef, err := client.ChefService.Create().
				SetFirstName(firstName).
				SetLastName(lastName).
				SetUsername(username).
				SetEmail(email).
				SetPasswordHash(hash).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create chef account: %w", err)
			}

			fmt.Printf("Chef account %q created (id %s).\n", chef.Username, chef.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "Admin", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "Admin", "last name")
	cmd.Flags().StringVar(&username, "username", "", "login username (required)")
	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&pw, "password", "", "initial password (required)")

	return cmd
}
