package server

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/hotseat/pkg/config"
)

func startHost(t *testing.T) string {
	t.Helper()
	h, err := New(config.Default(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go h.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	})
	return l.Addr().String()
}

func TestNonInteractiveSession(t *testing.T) {
	addr := startHost(t)

	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            "alice",
		Auth:            []gossh.AuthMethod{gossh.Password("anything")},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer sess.Close()

	out, err := sess.CombinedOutput("")
	var exit *gossh.ExitError
	if !errors.As(err, &exit) || exit.ExitStatus() != 1 {
		t.Fatalf("session error = %v; want exit status 1", err)
	}
	for _, want := range []string{"Turn: White", "White: 0  Black: 0", "non-interactive terminals are not supported"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCommand(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Binary = "/usr/local/bin/hotseat"
	h, err := New(cfg, nil, WithConfigFile("/etc/hotseat.yaml"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cmd := h.command(context.Background(), "xterm-256color", "brave-otter")
	want := []string{"/usr/local/bin/hotseat", "-name", "brave-otter", "-config", "/etc/hotseat.yaml"}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if got := cmd.Env[len(cmd.Env)-1]; got != "TERM=xterm-256color" {
		t.Errorf("last env entry = %q; want TERM", got)
	}
}

func TestMissingHostKey(t *testing.T) {
	cfg := config.Default()
	cfg.Server.HostKeyFile = filepath.Join(t.TempDir(), "missing_key")
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("New with a missing host key file succeeded")
	}
}
