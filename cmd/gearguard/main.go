// Command gearguard is the command-line client for the GearGuard API.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/gearguard-backend/internal/cli"
	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.NewRootCmd(cfg, cli.StdIO()).ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// printError shows API failures as the server's message plus field details.
// Server faults also show the request id so the operator can find the log line.
func printError(w io.Writer, err error) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if apiErr.StatusCode >= 500 && apiErr.RequestID != "" {
		fmt.Fprintf(w, "Error: %s (request %s)\n", apiErr.Message, apiErr.RequestID)
	} else {
		fmt.Fprintf(w, "Error: %s\n", apiErr.Message)
	}
	for _, d := range apiErr.Details {
		fmt.Fprintf(w, "  %s: %s\n", d.Field, d.Message)
	}
}
