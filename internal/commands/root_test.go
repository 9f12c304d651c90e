package commands

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolabot/saint-objet/internal/announce"
	"github.com/lolabot/saint-objet/internal/calendar"
	"github.com/lolabot/saint-objet/internal/config"
	"github.com/lolabot/saint-objet/internal/notify"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DatabasePath: ":memory:",
		NotifyTime:   "09:00",
		IconPath:     t.TempDir() + "/lola.png",
		LogLevel:     "debug",
	}
}

func TestRootStdout(t *testing.T) {
	cmd := NewRootCmd(testConfig(t), slog.New(slog.DiscardHandler))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--stdout"})

	err := cmd.Execute()
	require.NoError(t, err, "--stdout must always succeed")

	want, err := announce.Build(time.Now(), calendar.DefaultTable(), calendar.DefaultDayNames)
	require.NoError(t, err)

	assert.Equal(t, want+"\n", out.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), 2, "Announcement must be two lines")
}

func TestRootSlackRequiresConfig(t *testing.T) {
	cmd := NewRootCmd(testConfig(t), slog.New(slog.DiscardHandler))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--slack"})

	err := cmd.Execute()
	assert.Error(t, err, "Slack delivery without token and channel must fail")
}

func TestNewSenderDesktop(t *testing.T) {
	sender, err := newSender(testConfig(t), slog.New(slog.DiscardHandler), false)
	require.NoError(t, err)
	assert.IsType(t, &notify.Desktop{}, sender)
}

func TestNewSenderSlack(t *testing.T) {
	cfg := testConfig(t)
	cfg.SlackBotToken = "xoxb-test"
	cfg.SlackChannelID = "C123456789"

	sender, err := newSender(cfg, slog.New(slog.DiscardHandler), true)
	require.NoError(t, err)
	assert.IsType(t, &notify.Slack{}, sender)
}
