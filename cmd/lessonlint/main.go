package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lessonkit/lessonkit/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Color: isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == "",
	}
	return cli.NewRootCmd(app).Execute()
}
