// mediastatus — Waybar custom module reporting the current track.
//
// Usage:
//
//	mediastatus [-player <name>] [-timeout <dur>] [-max <n>] [-v]
//
// Prints exactly one JSON line and always exits 0.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/xob0t/deskkit/internal/logx"
	"github.com/xob0t/deskkit/pkg/player"
)

func main() {
	run(os.Args[1:], os.Stdout, os.Stderr)
}

// run prints one status line to stdout whatever args holds.
func run(args []string, stdout, stderr io.Writer) {
	fs := flag.NewFlagSet("mediastatus", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg     player.Config
		verbose bool
	)
	fs.StringVar(&cfg.Player, "player", "", "Only ask this player (playerctl --player)")
	fs.DurationVar(&cfg.Timeout, "timeout", player.DefaultTimeout, "Give up on playerctl after this long")
	fs.IntVar(&cfg.MaxLen, "max", player.MaxTextLen, "Truncate text beyond this many characters")
	fs.BoolVar(&verbose, "v", false, "Debug logging to stderr")

	err := fs.Parse(args)
	logx.InitWriter(stderr, "mediastatus", verbose)
	if err != nil {
		// -h and bad flags still get a status line; Waybar shows nothing otherwise.
		if !errors.Is(err, flag.ErrHelp) {
			logx.Warnf("flags: %v — using defaults", err)
		}
		cfg = player.Config{}
	}

	st := player.Query(context.Background(), cfg)
	if err := st.Encode(stdout); err != nil {
		logx.Errorf("write status: %v", err)
	}
}
