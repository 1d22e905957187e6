package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"calcpad/internal/domain"
	"calcpad/internal/logger"
	"calcpad/internal/services/calculator"
)

//go:embed static/*
var staticFiles embed.FS

const shutdownTimeout = 5 * time.Second

// Server is the calcpad HTTP front end.
type Server struct {
	addr     string
	maxBody  int64
	eval     domain.Evaluator
	log      *logger.Logger
	router   *httprouter.Router
	upgrader websocket.Upgrader
}

// NewServer builds a server listening on addr once Run is called.
func NewServer(addr string, maxBody int64, eval domain.Evaluator, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		addr:    addr,
		maxBody: maxBody,
		eval:    eval,
		log:     log.WithPrefix("web"),
		router:  httprouter.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/api/keypad", s.handleKeypad)
	s.router.POST("/api/evaluate", s.handleEvaluate)
	s.router.POST("/api/append", s.handleAppend)
	s.router.GET("/ws", s.handleWebSocket)
}

// Handler returns the routed handler with access logging.
func (s *Server) Handler() http.Handler { return s.accessLog(s.router) }

// newSession returns the calculator backing one WebSocket connection.
func (s *Server) newSession() *calculator.Service {
	return calculator.New(calculator.WithEvaluator(s.eval), calculator.WithLogger(s.log))
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ErrorLog:          slog.NewLogLogger(logger.NewSlogHandler(s.log.WithPrefix("http")), slog.LevelError),
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
