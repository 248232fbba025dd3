package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If MENUKIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.menukit/logs/menukit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("MENUKIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "menukit.log"
	}

	return filepath.Join(homeDir, ".menukit", "logs", "menukit.log")
}
