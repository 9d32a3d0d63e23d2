package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const memoDirEnv = "MEMO_DIR"

// ConfigurationError means the memo directory could not be determined.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// resolveMemoDir reads the memo directory from the environment, expanding a leading ~.
func resolveMemoDir(getenv func(string) string) (string, error) {
	dir := strings.TrimSpace(getenv(memoDirEnv))
	if dir == "" {
		return "", &ConfigurationError{
			msg: fmt.Sprintf("environment variable %s is not set. e.g: export %s=~/memo/daily", memoDirEnv, memoDirEnv),
		}
	}
	return expandHome(dir)
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(p, "~")), nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create memo dir %s: %w", dir, err)
	}
	return nil
}

func todayFilename(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format("2006-01-02")+".md")
}
