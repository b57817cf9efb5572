package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the pyctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/pyctl; on macOS
// to ~/Library/Application Support/pyctl; and on Windows to %AppData%/pyctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "pyctl"), nil
}
