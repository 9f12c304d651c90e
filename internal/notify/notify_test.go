package notify

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnnounce = "Chalut ! Aujourd'hui, Lourdi 1, c'est la Sainte-Veisalgie.\nBonne fête à toutes les Veisalgies 🎆"

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testDesktop(t *testing.T, command string) *Desktop {
	t.Helper()

	d := NewDesktop(testLogger(), filepath.Join(t.TempDir(), "lola.png"))
	d.command = command
	return d
}

func TestDesktopSendSuccess(t *testing.T) {
	d := testDesktop(t, "true")

	assert.True(t, d.Send(testAnnounce))
}

func TestDesktopSendToolFailure(t *testing.T) {
	d := testDesktop(t, "false")

	assert.False(t, d.Send(testAnnounce))
}

func TestDesktopSendToolMissing(t *testing.T) {
	d := testDesktop(t, "definitely-not-notify-send")

	assert.False(t, d.Send(testAnnounce))
}

func TestRunCapturesOutput(t *testing.T) {
	res := run("sh", "-c", "echo out; echo err >&2; exit 3")

	assert.False(t, res.notFound)
	assert.Equal(t, 3, res.exitCode)
	assert.Equal(t, "out\n", res.stdout)
	assert.Equal(t, "err\n", res.stderr)
}

func TestRunToolNotFound(t *testing.T) {
	res := run("definitely-not-notify-send")

	assert.True(t, res.notFound)
}

func TestEnsureIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lola.png")

	got, err := EnsureIcon(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, iconPNG, data)
}

func TestEnsureIconReusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lola.png")
	require.NoError(t, os.WriteFile(path, []byte("already here"), 0644))

	got, err := EnsureIcon(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("already here"), data, "Existing icon must not be overwritten")
}
