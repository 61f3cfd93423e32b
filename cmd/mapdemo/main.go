// Command mapdemo builds a small SortedMap, walks it with the built-in cursor,
// copies it and walks the copy.
package main

import (
	"fmt"
	"os"

	"github.com/amp-labs/amp-linkedmap/logger"
)

func main() {
	log, err := logger.ConfigureLogging("mapdemo")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(log).Execute(); err != nil {
		log.Error("mapdemo failed", "error", err)
		os.Exit(1)
	}
}
