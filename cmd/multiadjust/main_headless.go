//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/multi-adjust/internal/adjust"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("Multi Adjust %s (%s) %s\n", version, commit, date)
		return
	}

	sc, err := loadScene(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sess := adjust.NewSession()

	if opts.oneShot != "" {
		runLine(sc, sess, opts.oneShot)
	} else {
		repl(sc, sess)
	}

	if err := saveScene(opts, sc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
