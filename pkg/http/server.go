package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/pathkit/pkg/http/controllers"
	"github.com/lintang-b-s/pathkit/pkg/http/router"
	"github.com/lintang-b-s/pathkit/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{log: log}
}

// Use wires the routing service into the HTTP API and starts serving. It
// returns once the group context is done and the listener has stopped.
func (s *Server) Use(ctx context.Context, useRateLimit bool,
	routingService controllers.RoutingService) error {

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("API_RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("API_RATE_LIMIT_BURST", 100)

	config := server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		api := router.NewAPI(s.log)
		return api.Run(groupCtx, config, useRateLimit, routingService)
	})
	return group.Wait()
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
