// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// initctl inspects the supervisor state tinyinit publishes. It reads the
// status file once or streams updates as they happen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/aibor/tinyinit/internal/config"
	"github.com/aibor/tinyinit/internal/status"
)

func main() {
	dirFlag := &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "status directory to read from",
		Value:   config.DefaultStatusDir,
	}

	cmd := &cli.Command{
		Name:  "initctl",
		Usage: "Inspect the tinyinit supervisor state",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the current supervisor status",
				Flags:  []cli.Flag{dirFlag},
				Action: runStatus,
			},
			{
				Name:   "watch",
				Usage:  "Stream supervisor status updates until interrupted",
				Flags:  []cli.Flag{dirFlag},
				Action: runWatch,
			},
		},
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runStatus(_ context.Context, cmd *cli.Command) error {
	current, err := status.Read(cmd.String("dir"))
	if err != nil {
		return err
	}

	printStatus(current)

	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	events, stop, err := status.Watch(ctx, cmd.String("dir"))
	if err != nil {
		return err
	}
	defer func() { _ = stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if event.Err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", event.Err)

				continue
			}

			printStatus(event.Status)
		}
	}
}

func printStatus(current status.Status) {
	fmt.Printf("state:    %s\n", current.State)
	fmt.Printf("pid:      %d\n", current.PID)
	fmt.Printf("restarts: %d\n", current.Restarts)

	if !current.StartedAt.IsZero() {
		fmt.Printf("started:  %s\n",
			current.StartedAt.Format(time.RFC3339))
	}

	if current.State == "exited" {
		if current.LastSignal != "" {
			fmt.Printf("signal:   %s\n", current.LastSignal)
		} else {
			fmt.Printf("code:     %d\n", current.LastExitCode)
		}
	}

	fmt.Println()
}
