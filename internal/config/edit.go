package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnsureFile writes the default template to path unless a file already exists.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(DefaultTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// Edit creates the config file if needed and opens it in $EDITOR.
func Edit(path string) error {
	if err := EnsureFile(path); err != nil {
		return err
	}
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// DefaultTemplate returns the commented config written by Edit.
func DefaultTemplate() string {
	return fmt.Sprintf(`# termkit configuration
# Uncomment a value to enable it. CLI flags override config values.
# Secrets may also live in %s next to this file.

[log]
# level = %q            # debug, info, warn or error
# format = %q           # text or json

[weather]
# date-columns = ["PKT", "PKST"]  # Accepted names for the date column
# color = true                    # Colorize the daily graph on terminals

[quiz]
# url = %q
# host = %q
# api-key = ""                    # Or set %s
# timeout = "0s"                  # 0 keeps the transport default
# hover-time = %.1f               # Average hover time in seconds
# keystroke-time = %.2f           # Average time per keystroke in seconds
# wordlist = ""                   # Pick words from a local file instead of the API
`,
		filepath.Base(DefaultEnvPath()),
		DefaultLogLevel,
		DefaultLogFormat,
		DefaultWordURL,
		DefaultWordHost,
		EnvAPIKey,
		DefaultHoverTime,
		DefaultKeystrokeTime,
	)
}
