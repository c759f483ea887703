package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glowandgather/storefront/config"
	"github.com/glowandgather/storefront/internal/adminapi"
	"github.com/glowandgather/storefront/internal/app"
	"github.com/glowandgather/storefront/internal/siteapi"
	"github.com/glowandgather/storefront/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfile   = flag.String("c", "storefront.yml", "config file")
	initdb  = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	showVer = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("storefront", version)
		return
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	webserver.Init(application)
	adminapi.InitRouter()
	siteapi.InitRouter()

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		return webserver.Listen()
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-quit:
			zap.L().Info("shutting down", zap.String("signal", sig.String()))
			return webserver.Shutdown()
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}
