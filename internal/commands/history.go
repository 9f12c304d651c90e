package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lolabot/saint-objet/internal/config"
	"github.com/lolabot/saint-objet/internal/database"
	"github.com/lolabot/saint-objet/migrator/sqlite"
)

// NewHistoryCmd builds the history command, listing recent recorded
// deliveries newest first.
func NewHistoryCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recent announcement deliveries",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(cfg.DatabasePath)
			if err != nil {
				log.Error("failed to initialize database", "error", err)
				return err
			}
			defer db.Close()

			if err := sqlite.Migrate(db.DB()); err != nil {
				log.Error("failed to run migrations", "error", err)
				return err
			}

			deliveries, err := database.NewDeliveryRepository(db).ListRecent(limit)
			if err != nil {
				log.Error("failed to list deliveries", "error", err)
				return err
			}

			for _, d := range deliveries {
				status := "ok"
				if !d.Success {
					status = "failed"
				}
				firstLine, _, _ := strings.Cut(d.Announce, "\n")
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s  %-6s  %s\n",
					d.DeliveredAt.Format("2006-01-02 15:04"), d.Channel, status, firstLine)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of deliveries to list")

	return cmd
}
