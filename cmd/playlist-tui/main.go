package main

import (
	"fmt"
	"os"

	"github.com/handiism/playlist-lab/internal/session"
	"github.com/handiism/playlist-lab/internal/tui"
)

func main() {
	if err := tui.Run(session.New()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
