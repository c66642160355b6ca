package main

import (
	"io"
	"log/slog"
	"os"

	"edudb-server/cmd/api/wire"
	"edudb-server/cmd/config"
	"edudb-server/internal/workbench/usecases"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newCLI(func(cfg config.AppConfig) (usecases.DatabaseService, func(), error) {
		return wire.InitializeDatabaseService(cfg)
	})
	err := c.rootCmd().Execute()
	c.Close()
	if err != nil {
		os.Exit(1)
	}
}
