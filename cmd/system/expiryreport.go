package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hemobank/hemobank_backend/config"
	"github.com/hemobank/hemobank_backend/internal/repo"
	"github.com/hemobank/hemobank_backend/internal/service/bloodbag"
	"github.com/hemobank/hemobank_backend/pkg/database"
	"github.com/hemobank/hemobank_backend/pkg/email"
)

// NewExpiryReportCommand prints the expiring-soon bags, optionally mailing
// the digest to the configured report recipient.
func NewExpiryReportCommand() *cobra.Command {
	var sendEmail bool

	cmd := &cobra.Command{
		Use:   "expiry-report",
		Short: "Report blood bags expiring within the alert window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			bags, err := bloodbag.New(client).ExpiringAlerts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list expiring bags: %w", err)
			}

			report := formatReport(bags)
			fmt.Print(report)

			if !sendEmail {
				return nil
			}

			mailer, err := email.NewFromCentral(cfg.Email)
			if err != nil {
				return fmt.Errorf("failed to create email client: %w", err)
			}
			to := mailer.ReportRecipient()
			if to == "" {
				return fmt.Errorf("email.report_to is not configured")
			}

			err = mailer.Send(ctx, email.Message{
				To:       []string{to},
				Subject:  fmt.Sprintf("Expiry report: %d bag(s) expiring soon", len(bags)),
				TextBody: report,
			})
			if err != nil {
				return fmt.Errorf("failed to send report: %w", err)
			}

			fmt.Printf("Report sent to %s.\n", to)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sendEmail, "email", false, "send the report to the configured recipient")

	return cmd
}

func formatReport(bags []*repo.BloodBag) string {
	if len(bags) == 0 {
		return "No bags expiring within the alert window.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d bag(s) expiring within %d days:\n", len(bags), bloodbag.AlertHorizonDays)
	for _, bag := range bags {
		fmt.Fprintf(&b, "  %-12s %-4s expires %s\n",
			bag.BagNumber, bag.BloodGroup, bag.ExpireDate.Format("2006-01-02"))
	}
	return b.String()
}
