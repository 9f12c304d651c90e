// Package notify delivers the announcement to the user, either as a
// desktop notification through notify-send or as a Slack message.
package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
)

// AppName is the application name shown by the desktop notification.
const AppName = "Annonce de Lola"

// Sender delivers a rendered announcement. Implementations report
// delivery as a boolean and must not fail the process.
type Sender interface {
	Send(announce string) bool
}

// runResult captures the outcome of the external tool invocation.
type runResult struct {
	notFound bool
	exitCode int
	stdout   string
	stderr   string
}

// Desktop sends announcements via the notify-send command line tool.
type Desktop struct {
	command  string
	iconPath string
	log      *slog.Logger
}

// NewDesktop creates a desktop notifier materializing its icon at
// iconPath on first use.
func NewDesktop(log *slog.Logger, iconPath string) *Desktop {
	return &Desktop{
		command:  "notify-send",
		iconPath: iconPath,
		log:      log,
	}
}

// Send delivers the two-line announcement as a desktop notification,
// using the second line as the summary and the first as the body.
// It reports whether the notification was delivered; failures are
// logged at debug level and never escape as errors.
func (d *Desktop) Send(announce string) bool {
	body, summary, ok := strings.Cut(announce, "\n")
	if !ok {
		summary = body
	}

	args := []string{"--app-name=" + AppName, "--urgency=normal"}
	icon, err := EnsureIcon(d.iconPath)
	if err != nil {
		// Degrade to an iconless notification rather than failing.
		d.log.Debug("could not materialize notification icon", "error", err)
	} else {
		args = append(args, "--icon="+icon)
	}
	args = append(args, summary, body)

	res := run(d.command, args...)
	switch {
	case res.notFound:
		d.log.Debug("is notify-send available?", "command", d.command)
		return false
	case res.exitCode != 0:
		d.log.Debug("notification tool exited with nonzero status",
			"exit_code", res.exitCode,
			"stdout", res.stdout,
			"stderr", res.stderr,
		)
		return false
	}
	return true
}

// run invokes the tool synchronously and captures its output. Every
// failure mode is folded into the result, never an error value.
func run(name string, args ...string) runResult {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := runResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
		} else {
			// Tool missing or failed to start at all.
			res.notFound = true
		}
	}
	return res
}
