package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"guardpost/internal/components"
	"guardpost/internal/config"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		logger := components.SetupLogger("local")
		logger.Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Monitor.Run(ctx)
		logger.Info("overdue monitor stopped")
	}()

	if !cfg.Alerts.Disabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.AlertSender.Run(ctx)
			logger.Info("alert sender stopped")
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
