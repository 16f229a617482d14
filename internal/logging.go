package internal

import (
	"log"
	"os"
)

// InitLogging routes logs to stderr so report output on stdout stays
// machine-readable.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
