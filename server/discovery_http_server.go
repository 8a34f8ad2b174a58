package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// DiscoveryHttpServer owns the HTTP listener and its graceful shutdown.
type DiscoveryHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	port      int
	logger    *zap.SugaredLogger
}

func NewDiscoveryHttpServer(router *Router, muxRouter *mux.Router, port int, logger *zap.SugaredLogger) *DiscoveryHttpServer {
	return &DiscoveryHttpServer{
		router:    router,
		muxRouter: muxRouter,
		port:      port,
		logger:    logger,
	}
}

// Start registers the routes and serves until an interrupt or termination
// signal arrives, then shuts down gracefully.
func (s *DiscoveryHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalw("ListenAndServe failed", "error", err)
		}
	}()

	<-stop
	s.logger.Info("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatalw("server forced to shutdown", "error", err)
	}

	s.logger.Info("server exited")
}
