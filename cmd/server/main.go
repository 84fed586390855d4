package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"

	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/logging"
	"github.com/qnkhuat/hotseat/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file, also passed to every game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Log, os.Stderr)
	if cfg.Log.File != "" {
		closeLog, err := logging.Init(cfg.Log, "server")
		if err != nil {
			log.Fatal(err)
		}
		defer closeLog()
		logger = logging.L()
	}

	var opts []server.Option
	if *configPath != "" {
		opts = append(opts, server.WithConfigFile(*configPath))
	}
	host, err := server.New(cfg, logger, opts...)
	if err != nil {
		logger.Fatal("server_init", zap.Error(err))
	}

	done := make(chan error, 1)
	go func() {
		done <- host.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("serve", zap.Error(err))
		}
	case sig := <-sigc:
		logger.Info("signal", zap.Stringer("signal", sig))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := host.Shutdown(ctx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}
}
