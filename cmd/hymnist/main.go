package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/hymnist/hymnist/internal/cli"
)

func main() { os.Exit(run()) }

func run() int {
	// create a context that is canceled when the user interrupts the program
	var ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var stderr = colorable.NewColorableStderr()

	if len(os.Args) < 1 {
		_, _ = fmt.Fprintln(stderr, "error: missing application name")

		return 1
	}

	var fd = os.Stdout.Fd()

	app, err := cli.NewApp(filepath.Base(os.Args[0]),
		cli.WithOutput(colorable.NewColorableStdout(), stderr),
		cli.WithColors(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error: "+err.Error())

		return 1
	}

	// run the CLI application
	return app.ExitCode(app.Run(ctx, os.Args[1:]))
}
