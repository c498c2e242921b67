package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tourwise/tourcrm/config"
	"github.com/tourwise/tourcrm/internal/adminapi"
	"github.com/tourwise/tourcrm/internal/app"
	"github.com/tourwise/tourcrm/internal/webserver"
)

var (
	configFile = flag.String("c", "tourcrm.yml", "config file path")
	resetData  = flag.Bool("reset", false, "reseed every domain from the default datasets and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer application.Release()

	if *resetData {
		if err := application.ResetAll(); err != nil {
			zap.S().Fatalf("reset failed: %v", err)
		}
		zap.S().Info("all domains reseeded from defaults")
		return
	}

	e := webserver.Init(application)
	adminapi.InitRouter()

	go func() {
		if err := webserver.Start(application); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("webserver error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown error: %v", err)
	}
}
