package main

import (
	"context"
	"io"
	"os"

	"github.com/yigit/unicourse/internal/pkg/logger"
	"github.com/yigit/unicourse/internal/server"
)

func main() {
	run(context.Background(), os.Stdin, os.Stdout)
	// Every path ends with status 0, including diagnosed errors.
	os.Exit(0)
}

// run wires the server to the given streams. Command failures are reported
// on out by the server itself; anything else goes to the log.
func run(ctx context.Context, in io.Reader, out io.Writer) {
	srv, err := server.NewServer(in, out)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize")
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Debug().Err(err).Msg("Run stopped on command error")
		return
	}

	logger.Debug().Msg("Application finished gracefully.")
}
