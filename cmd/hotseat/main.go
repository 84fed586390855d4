package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
	"github.com/qnkhuat/hotseat/pkg/gui"
	"github.com/qnkhuat/hotseat/pkg/logging"
	"github.com/qnkhuat/hotseat/pkg/textboard"
)

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	logPath := flag.String("log", "", "path to log file, overrides the config")
	name := flag.String("name", "", "session name shown in the log")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("hotseat: %v", err)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	closeLog, err := logging.Init(cfg.Log, "client")
	if err != nil {
		fatal("hotseat: %v", err)
	}
	defer closeLog()

	opts := []game.Option{game.WithLogger(logging.L())}
	if *name != "" {
		opts = append(opts, game.WithName(*name))
	}
	session := game.NewSession(opts...)

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		textboard.Render(os.Stdout, session.Snapshot(), cfg.Players)
		closeLog()
		fatal("hotseat: stdout is not a terminal, start it from an interactive shell to play")
	}
	layout := gui.NewLayout(cfg.Layout.SquareWidth, cfg.Layout.SquareHeight)
	if w, h, err := term.GetSize(fd); err == nil && (w < layout.Width() || h < layout.Height()) {
		closeLog()
		fatal("hotseat: terminal is %dx%d, the board needs at least %dx%d", w, h, layout.Width(), layout.Height())
	}

	cl, err := gui.NewClient(session, cfg, logging.L())
	if err != nil {
		closeLog()
		fatal("hotseat: %v", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		sig := <-sigc
		logging.L().Info("signal", zap.Stringer("signal", sig))
		cl.Stop()
	}()

	if err := cl.Run(); err != nil {
		logging.L().Error("ui_exit", zap.Error(err))
		closeLog()
		fatal("hotseat: %v", err)
	}
	logging.L().Info("session_end", zap.Any("scores", session.Snapshot().Scores))
}
