// Command prakriya derives Sanskrit verb forms and explains their derivations.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/roach88/prakriya/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
