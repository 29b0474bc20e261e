package cmd

import (
	"fmt"
	"os"
	"strings"
)

// stderrPrintLnf writes a formatted line to stderr, ensuring a trailing
// newline so report output on stdout stays uncorrupted.
func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}
