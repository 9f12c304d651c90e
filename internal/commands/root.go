// Package commands defines the CLI commands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/lolabot/saint-objet/internal/announce"
	"github.com/lolabot/saint-objet/internal/calendar"
	"github.com/lolabot/saint-objet/internal/config"
	"github.com/lolabot/saint-objet/internal/notify"
)

// ErrNotSent signals that the announcement could not be delivered.
// It carries no user-facing message: diagnostics stay at debug level
// and the process simply exits nonzero.
var ErrNotSent = errors.New("announcement not delivered")

// NewRootCmd builds the root command, which announces today's
// hallowed object once and exits.
func NewRootCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	var useStdout, useSlack bool

	cmd := &cobra.Command{
		Use:           "saint-objet",
		Short:         "Annonce quotidienne de l'objet sacré du jour",
		Long:          "Perpetuation of Lola's daily announcement for the holy object.\nSends a desktop notification unless called with --stdout.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := announce.Build(time.Now(), calendar.DefaultTable(), calendar.DefaultDayNames)
			if err != nil {
				log.Error("failed to build announcement", "error", err)
				return err
			}

			if useStdout {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			sender, err := newSender(cfg, log, useSlack)
			if err != nil {
				log.Error("failed to set up notifier", "error", err)
				return err
			}

			if !sender.Send(text) {
				return ErrNotSent
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useStdout, "stdout", false, "print the announcement to standard output instead of notifying")
	cmd.Flags().BoolVar(&useSlack, "slack", false, "post the announcement to the configured Slack channel")

	return cmd
}

func newSender(cfg *config.Config, log *slog.Logger, useSlack bool) (notify.Sender, error) {
	if !useSlack {
		return notify.NewDesktop(log, cfg.IconPath), nil
	}

	if cfg.SlackBotToken == "" || cfg.SlackChannelID == "" {
		return nil, errors.New("SLACK_BOT_TOKEN and SLACK_CHANNEL_ID must be set for Slack delivery")
	}
	return notify.NewSlack(log, slack.New(cfg.SlackBotToken), cfg.SlackChannelID), nil
}
