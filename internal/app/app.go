package app

import (
	"calcpad/internal/config"
	"calcpad/internal/domain"
	"calcpad/internal/logger"
	"calcpad/internal/services/calculator"
	"calcpad/internal/web"
)

// App bundles what the commands share.
type App struct {
	Config config.Config
	Log    *logger.Logger
	Eval   domain.Evaluator
	Remote domain.RemoteEvaluator // nil unless a remote URL was given
}

func New(cfg config.Config, log *logger.Logger, eval domain.Evaluator, remote domain.RemoteEvaluator) *App {
	return &App{
		Config: cfg,
		Log:    log,
		Eval:   eval,
		Remote: remote,
	}
}

// NewCalculator returns a fresh calculator; each front end session gets its own.
func (a *App) NewCalculator() *calculator.Service {
	return calculator.New(
		calculator.WithEvaluator(a.Eval),
		calculator.WithLogger(a.Log.WithPrefix("calc")),
	)
}

// NewServer returns the HTTP front end configured from a.Config.
func (a *App) NewServer() *web.Server {
	return web.NewServer(a.Config.Addr, a.Config.MaxBodyBytes, a.Eval, a.Log)
}

// Close releases the log file.
func (a *App) Close() error { return a.Log.Close() }
