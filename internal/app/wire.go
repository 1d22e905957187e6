package app

import (
	"fmt"
	"net/http"
	"time"

	"calcpad/internal/client"
	"calcpad/internal/config"
	"calcpad/internal/domain"
	"calcpad/internal/evaluator"
	"calcpad/internal/logger"
)

// Options control how Wire builds the App.
type Options struct {
	ConfigPath string               // empty means config.DefaultPath
	Override   func(*config.Config) // flag values, applied after file and env
	RemoteURL  string               // base URL of a calcpad server, optional
	HTTP       *http.Client         // optional; defaults to a client with a 10s timeout
}

// Wire constructs the dependency graph from opts.
func Wire(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Override != nil {
		opts.Override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.Open(cfg.LogFile, cfg.Level())
	if err != nil {
		return nil, err
	}

	var remote domain.RemoteEvaluator
	if opts.RemoteURL != "" {
		hc := opts.HTTP
		if hc == nil {
			hc = &http.Client{Timeout: 10 * time.Second}
		}
		remote = client.NewHTTP(opts.RemoteURL, hc)
	}

	return New(cfg, log, evaluator.Default, remote), nil
}
