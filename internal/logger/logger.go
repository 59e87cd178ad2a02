// ABOUTME: Leveled logging for the checker tool with a verbosity toggle
// ABOUTME: Thin facade over the standard library logger, redirectable for tests

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var verbose = false

// SetVerbose enables or disables DEBUG output.
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns the current verbosity setting.
func IsVerbose() bool {
	return verbose
}

// SetOutput redirects log output; nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		log.SetOutput(os.Stderr)
		return
	}

	log.SetOutput(w)
}

// Debug logs at DEBUG level, shown only when verbose.
func Debug(format string, args ...any) {
	if verbose {
		log.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
	}
}

// Info logs at INFO level.
func Info(format string, args ...any) {
	log.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func Warn(format string, args ...any) {
	log.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func Error(format string, args ...any) {
	log.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
