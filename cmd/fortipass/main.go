// Command fortipass generates, analyzes and breach-checks passwords from the
// terminal without a running server.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
