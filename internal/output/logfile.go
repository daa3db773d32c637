package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If BRANCHWIRE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.branchwire/logs/branchwire.log
func GetLogFilePath() string {
	if customPath := os.Getenv("BRANCHWIRE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "branchwire.log"
	}

	return filepath.Join(homeDir, ".branchwire", "logs", "branchwire.log")
}
