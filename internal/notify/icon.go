package notify

import (
	_ "embed"
	"fmt"
	"os"
)

// The icon is materialized to the configured path (default
// /tmp/lola.png), reused across runs and never cleaned up.
//
//go:embed lola.png
var iconPNG []byte

// EnsureIcon writes the embedded icon to path unless it already
// exists, and returns the path.
func EnsureIcon(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, iconPNG, 0644); err != nil {
		return "", fmt.Errorf("failed to write icon: %w", err)
	}
	return path, nil
}
