// Package server hosts hotseat over SSH. Every interactive connection gets
// its own hotseat process running on a pseudo-terminal.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/hotseat/pkg/config"
	"github.com/qnkhuat/hotseat/pkg/game"
	"github.com/qnkhuat/hotseat/pkg/textboard"
)

type Host struct {
	*ssh.Server
	cfg        *config.Config
	configFile string
	log        *zap.Logger
}

type Option func(*Host)

// WithConfigFile passes path to every spawned hotseat process.
func WithConfigFile(path string) Option {
	return func(h *Host) { h.configFile = path }
}

func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Host, error) {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Host{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(h)
	}

	h.Server = &ssh.Server{
		Addr:        cfg.Server.Addr,
		IdleTimeout: cfg.Server.IdleTimeout,
		Handler:     h.handle,
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}
	// Without a key file gliderlabs/ssh generates a host key at start.
	if cfg.Server.HostKeyFile != "" {
		if err := h.SetOption(ssh.HostKeyFile(cfg.Server.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("load host key: %w", err)
		}
	}
	return h, nil
}

// Serve accepts connections on l until Shutdown.
func (h *Host) Serve(l net.Listener) error {
	h.log.Info("ssh_listen", zap.Stringer("addr", l.Addr()))
	return h.Server.Serve(l)
}

func (h *Host) ListenAndServe() error {
	l, err := net.Listen("tcp", h.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", h.Addr, err)
	}
	return h.Serve(l)
}

func (h *Host) Shutdown(ctx context.Context) error {
	h.log.Info("ssh_shutdown")
	return h.Server.Shutdown(ctx)
}

// command builds the hotseat process for one terminal.
func (h *Host) command(ctx context.Context, term, name string) *exec.Cmd {
	args := []string{"-name", name}
	if h.configFile != "" {
		args = append(args, "-config", h.configFile)
	}
	cmd := exec.CommandContext(ctx, h.cfg.Server.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (h *Host) handle(s ssh.Session) {
	log := h.log.With(zap.String("user", s.User()), zap.Stringer("remote", s.RemoteAddr()))

	ptyReq, winCh, isPty := s.Pty()
	if !isPty {
		log.Info("ssh_no_pty")
		if err := textboard.Render(s, game.NewState().Snapshot(), h.cfg.Players); err != nil {
			log.Debug("ssh_snapshot", zap.Error(err))
		}
		io.WriteString(s, "non-interactive terminals are not supported\n")
		s.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(s.Context())
	defer cancelCmd()

	name := petname.Generate(2, "-")
	cmd := h.command(cmdCtx, ptyReq.Term, name)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		log.Error("pty_start", zap.Error(err))
		io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.Exit(1)
		return
	}
	defer f.Close()
	log.Info("ssh_session_start", zap.String("session", name), zap.Int("pid", cmd.Process.Pid))

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, s)
	}()
	io.Copy(s, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Debug("ssh_session_exit", zap.String("session", name), zap.Error(err))
	}
	log.Info("ssh_session_end", zap.String("session", name))
}
