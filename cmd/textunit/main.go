// Command textunit inspects UTF-8 and UTF-16 text: it lists decoded scalars,
// splits text into grapheme clusters, validates and sanitizes it.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/scalecode-solutions/textunit/cmd/textunit/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
