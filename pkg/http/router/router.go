package router

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/pathkit/pkg/http/controllers"
	"github.com/lintang-b-s/pathkit/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/pathkit/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Run builds the routing table and middleware chain and serves until the
// context is cancelled or the listener fails.
func (api *API) Run(ctx context.Context, config server.Config, useRateLimit bool,
	routingService controllers.RoutingService) error {

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	group := routerhelper.NewRouteGroup(router, "/api")
	routingAPI := controllers.NewRoutingAPI(api.log, routingService)
	routingAPI.Routes(group)

	chain := alice.New(
		api.recoverPanic,
		RealIP,
		Heartbeat("healthz"),
		Logger(api.log),
		EnforceJSONHandler,
		corsHandler.Handler,
	)
	if useRateLimit {
		chain = chain.Append(Limit)
	}

	srv := server.New(ctx, chain.Then(router), config)

	serverErr := make(chan error, 1)
	go func() {
		api.log.Info("http server listening", zap.String("addr", srv.Addr))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
