package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/app"
	"github.com/Kajalkumari31/ministore/internal/shopapi"
	"github.com/Kajalkumari31/ministore/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	x        = flag.Bool("x", false, "debug mode")
	initdb   = flag.Bool("initdb", false, "drop and recreate the product catalog")
	conffile = flag.String("c", "", "config yaml file")
)

func main() {
	flag.Parse()
	if *h {
		fmt.Fprintf(os.Stderr, "Usage: %s -c ministore.yml\n", os.Args[0])
		flag.PrintDefaults()
		return
	}

	appConfig := config.LoadConfig(*conffile)
	if *x {
		appConfig.System.Debug = true
	}

	application := app.NewApplication(appConfig)
	application.Init(appConfig)
	defer application.Release()

	if *initdb {
		application.InitDb()
	}

	ws := webserver.Init(appConfig)
	shopapi.Init(application.Service())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ws.Start(ctx)
	})
	g.Go(func() error {
		application.StartBackgroundJobs(ctx)
		<-ctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
	zap.L().Info("server stopped")
}
