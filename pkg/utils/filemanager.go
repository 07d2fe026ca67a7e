// =============================================================================
// Corp Summary - File Utilities
// =============================================================================
//
// Helpers used by the export report:
//   - Output path templating ({uuid}, {timestamp}, {date}, {time})
//   - Existence checks for the destination and its directory
//
// Destination directories are never created here: a report written to a
// missing directory must fail so the user sees the misconfigured path.
//
// =============================================================================

package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputPath expands placeholders in an output path template.
//
// PARAMETERS:
//   - format: The path template.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Date (YYYYMMDD)
//               {time}      - Time (HHMMSS)
//   - now: The time used for the date placeholders.
//
// EXAMPLE:
//   format: "output/summary_{date}.csv"
//   output: "output/summary_20240115.csv"
func GenerateOutputPath(format string, now time.Time) string {
	if !strings.Contains(format, "{") {
		return format
	}

	replacer := strings.NewReplacer(
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	)
	return replacer.Replace(format)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// DirExists reports whether the parent directory of path exists and is a
// directory.
func DirExists(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}
