package main

import (
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// copyToClipboard emits an OSC52 escape so the hosting terminal puts text on
// the system clipboard, with tmux/screen passthrough when needed.
func copyToClipboard(text string) {
	seq := osc52.New(text).Limit(100 * 1024)

	term := strings.ToLower(os.Getenv("TERM"))
	if tmux := os.Getenv("TMUX"); tmux != "" || strings.HasPrefix(term, "tmux") {
		seq = seq.Tmux()
	} else if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	}

	_, _ = seq.WriteTo(os.Stdout)
}
