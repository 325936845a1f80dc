// Command distfield generates distance field images from images and text.
//
// Usage:
//
//	distfield generate input.png output.png --algorithm sweep --spread 4
//	distfield text "Hello" hello.png --size 96
//	distfield algorithms
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/distfield/internal/cli"
)

// Set via ldflags.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
