package commands

import (
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lolabot/saint-objet/internal/announce"
	"github.com/lolabot/saint-objet/internal/calendar"
	"github.com/lolabot/saint-objet/internal/config"
	"github.com/lolabot/saint-objet/internal/database"
	"github.com/lolabot/saint-objet/internal/notify"
	"github.com/lolabot/saint-objet/internal/scheduler"
	"github.com/lolabot/saint-objet/migrator/sqlite"
	"github.com/lolabot/saint-objet/pkg/models"
)

// NewDaemonCmd builds the daemon command: announce every day at the
// configured time, recording each delivery. If no successful delivery
// exists yet for today, one is sent immediately at startup.
func NewDaemonCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "daemon",
		Short:         "Run in the background and announce daily at NOTIFY_TIME",
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

			repo := database.NewDeliveryRepository(db)
			senders := daemonSenders(cfg, log)

			job := func() { announceAndRecord(log, repo, senders) }

			// Catch-up: if nothing was delivered today, announce now.
			sent, err := repo.SentToday(time.Now())
			if err != nil {
				log.Error("failed to check today's deliveries", "error", err)
				return err
			}
			if sent {
				log.Info("announcement already delivered today, waiting for next schedule")
			} else {
				log.Info("no delivery recorded today, announcing now")
				job()
			}

			sched := scheduler.New(log)
			if err := sched.ScheduleDaily(cfg.NotifyTime, job); err != nil {
				log.Error("failed to schedule announcement", "error", err)
				return err
			}
			sched.Start()
			defer sched.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			log.Info("shutting down")
			return nil
		},
	}
}

// daemonSenders returns the desktop notifier, plus Slack when
// configured.
func daemonSenders(cfg *config.Config, log *slog.Logger) map[string]notify.Sender {
	senders := map[string]notify.Sender{
		models.ChannelDesktop: notify.NewDesktop(log, cfg.IconPath),
	}
	if slackSender, err := newSender(cfg, log, true); err == nil {
		senders[models.ChannelSlack] = slackSender
	}
	return senders
}

func announceAndRecord(log *slog.Logger, repo *database.DeliveryRepository, senders map[string]notify.Sender) {
	now := time.Now()
	text, err := announce.Build(now, calendar.DefaultTable(), calendar.DefaultDayNames)
	if err != nil {
		log.Error("failed to build announcement", "error", err)
		return
	}

	for channel, sender := range senders {
		ok := sender.Send(text)
		if ok {
			log.Info("announcement delivered", "channel", channel)
		} else {
			log.Warn("announcement not delivered", "channel", channel)
		}

		delivery := &models.Delivery{
			Month:       int(now.Month()),
			Day:         now.Day(),
			Channel:     channel,
			Success:     ok,
			Announce:    text,
			DeliveredAt: now,
		}
		if err := repo.Record(delivery); err != nil {
			log.Error("failed to record delivery", "channel", channel, "error", err)
		}
	}
}
