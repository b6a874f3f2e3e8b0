package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/summarizer/internal/app"
	"github.com/dtnitsch/summarizer/internal/auth"
	"github.com/dtnitsch/summarizer/internal/summarize"
	"github.com/dtnitsch/summarizer/pkg/help"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := auth.Commands()
	commands = append(commands,
		summarize.Command(),
		&cli.Command{
			Name:  "quickstart",
			Usage: "print a YAML cheat-sheet",
			Action: func(c *cli.Context) error {
				fmt.Fprint(c.App.Writer, help.ColdstartYAML)
				return nil
			},
		},
	)

	cliApp := &cli.App{
		Name:     "summarizer",
		Usage:    "sign up, log in and summarize text with a summarization backend",
		Flags:    app.GlobalFlags(),
		Commands: commands,
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(app.ExitFailure)
	}
}
