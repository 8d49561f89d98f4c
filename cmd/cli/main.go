package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Vivekdembla/pdf-frontend/internal/buildinfo"
	"github.com/Vivekdembla/pdf-frontend/internal/client/api"
	"github.com/Vivekdembla/pdf-frontend/internal/client/cli"
	"github.com/Vivekdembla/pdf-frontend/internal/client/config"
	"github.com/Vivekdembla/pdf-frontend/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	apiClient := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, log)

	app := cli.NewApp(cfg, apiClient, log)
	app.Run(ctx)

}
