package cmd

import (
	"fmt"
	"os"
	"os/signal"
)

// handleInterrupt makes Ctrl-C exit the REPL cleanly with status 0.
func handleInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stdout)
		os.Exit(0)
	}()
}
