package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/alakhsir/studium/internal/app"
	"github.com/alakhsir/studium/internal/auth"
	"github.com/alakhsir/studium/internal/catalog"
	"github.com/alakhsir/studium/internal/config"
	"github.com/alakhsir/studium/internal/log"
	"github.com/alakhsir/studium/internal/media"
	"github.com/alakhsir/studium/internal/mpris"
	"github.com/alakhsir/studium/internal/notify"
	"github.com/alakhsir/studium/internal/pip"
	"github.com/alakhsir/studium/internal/session"
	"github.com/alakhsir/studium/internal/state"
	"github.com/alakhsir/studium/internal/surface"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "studium: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := log.Setup(cfg.GetLogConfig())
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	states, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer states.Close()

	store, err := openCatalog(cfg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	provider := openAuth(cfg)

	pb := cfg.GetPlaybackConfig()
	element := media.NewPlayhead(
		media.WithProbe(probeWithTimeout(media.DefaultProbe, pb.ProbeTimeout())),
	)
	defer element.Close()

	router := app.NewRouter(app.PageLogin)
	transport := surface.NewTransport(element, surface.NopDisplay{})

	// The pause observation feeds the PiP-leave close heuristic.
	controller := session.NewController(router, pip.NewNop(),
		session.WithPausedFunc(transport.Paused))
	defer controller.Shutdown()

	var opts []app.Option
	if notifier, err := notify.New(); err == nil {
		opts = append(opts, app.WithNotifier(notifier))
	} else {
		logrus.WithError(err).Debug("desktop notifications unavailable")
	}

	m, err := app.New(cfg, store, provider, states, controller, transport, router, opts...)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	if adapter, err := mpris.New(controller, element); err == nil {
		defer adapter.Close()
	} else {
		logrus.WithError(err).Debug("mpris unavailable")
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// openCatalog connects to the configured Postgres catalog, or falls back to
// the built-in demo catalog so the client works without a backend.
func openCatalog(cfg *config.Config) (catalog.Store, error) {
	if !cfg.HasDatabase() {
		logrus.Info("no database configured, using demo catalog")
		return catalog.NewDemo(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return catalog.NewPgStore(ctx, cfg.DatabaseURL)
}

// openAuth returns the OTP provider for the configured endpoint, or a fake
// that accepts any code when no endpoint is set.
func openAuth(cfg *config.Config) auth.Provider {
	if cfg.HasAuth() {
		return auth.NewClient(cfg.Auth.Endpoint, cfg.Auth.APIKey)
	}

	logrus.Info("no auth endpoint configured, using demo sign-in")
	fake := auth.NewFake()
	fake.SetSession(&auth.Session{
		AccessToken: "demo",
		ExpiresAt:   time.Now().AddDate(0, 0, 30),
		Identity: auth.Identity{
			UserID: "demo-user",
			Email:  "student@studium.local",
			Name:   "Demo Student",
		},
	})
	return fake
}

// probeWithTimeout bounds a metadata probe so a stalled resolver cannot
// wedge the loading state forever.
func probeWithTimeout(inner media.ProbeFunc, timeout time.Duration) media.ProbeFunc {
	return func(sourceURL string) (time.Duration, error) {
		type result struct {
			dur time.Duration
			err error
		}
		ch := make(chan result, 1)
		go func() {
			d, err := inner(sourceURL)
			ch <- result{dur: d, err: err}
		}()
		select {
		case r := <-ch:
			return r.dur, r.err
		case <-time.After(timeout):
			return 0, fmt.Errorf("probe %s: timed out after %s", sourceURL, timeout)
		}
	}
}
