package utils

import (
	"fmt"
	"os"
)

// CheckErrorAndExit prints msg with err to stderr and exits non-zero.
// Command line helper, not for library code.
func CheckErrorAndExit(err error, msg string) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err)
	os.Exit(1)
}
