package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"taxmemo/app/api"
	"taxmemo/app/config"
	"taxmemo/app/service/generate"
	"taxmemo/app/service/ingest"
	"taxmemo/app/service/knowledge"
	"taxmemo/app/service/memo"
	"taxmemo/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/samber/do"
)

func main() {
	_ = godotenv.Load()

	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, knowledge.New)
	do.Provide(di, generate.New)
	do.Provide(di, memo.New)
	do.Provide(di, ingest.New)
	do.Provide(di, api.New)
	do.Provide(di, api.NewMCP)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	switch subcommand() {
	case "ingest":
		dir := ""
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		if err = do.MustInvoke[*ingest.Service](di).Run(appCtx, dir); err != nil {
			log.Fatalf("ingestion failed: %v", err)
		}

	case "mcp":
		if err = do.MustInvoke[*api.MCPServer](di).Run(appCtx); err != nil {
			log.Fatalf("mcp server failed: %v", err)
		}

	case "", "serve":
		slog.Info("Service started")

		if err = do.MustInvoke[*api.Server](di).Run(appCtx); err != nil {
			log.Fatalf("http server failed: %v", err)
		}

	default:
		log.Fatalf("unknown subcommand %q (expected serve, ingest or mcp)", subcommand())
	}
}

func subcommand() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return ""
}
