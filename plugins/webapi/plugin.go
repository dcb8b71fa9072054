// Package webapi is a plugin that serves the registry operations over HTTP.
package webapi

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	echolog "github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/iotaledger/assetledger/packages/ratelimiter"
	"github.com/iotaledger/assetledger/packages/registry"
	"github.com/iotaledger/assetledger/plugins/prometheus"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

const shutdownTimeout = 5 * time.Second

// Server is the HTTP surface of the node.
type Server struct {
	server      *echo.Echo
	bindAddress string
	registry    *registry.Registry
	metrics     *prometheus.Metrics
	rateLimiter *ratelimiter.AccountRateLimiter
	log         *logger.Logger
}

// New creates the web API configured by the given viper instance and registers its routes.
func New(v *viper.Viper, r *registry.Registry, metrics *prometheus.Metrics, log *logger.Logger) (*Server, error) {
	rateLimiter, err := ratelimiter.NewAccountRateLimiter(v.GetDuration(CfgRateLimitInterval), v.GetInt(CfgRateLimitLimit), log)
	if err != nil {
		return nil, errors.Errorf("failed to create rate limiter: %w", err)
	}
	rateLimiter.LimitHit.Hook(event.NewClosure(func(*ratelimiter.LimitHitEvent) {
		metrics.RateLimitHit()
	}))

	s := &Server{
		server:      echo.New(),
		bindAddress: v.GetString(CfgBindAddress),
		registry:    r,
		metrics:     metrics,
		rateLimiter: rateLimiter,
		log:         log,
	}
	s.server.HideBanner = true
	s.server.HidePort = true
	s.server.Logger.SetLevel(echolog.OFF)
	s.server.Use(middleware.Recover())

	s.server.POST("/registry/assets", s.createAssetHandler)
	s.server.POST("/registry/assets/:assetID/transfer", s.transferHandler)
	s.server.GET("/registry/assets/:assetID", s.assetHandler)
	s.server.GET("/registry/accounts/:accountID/assets", s.ownedAssetsHandler)
	s.server.GET("/registry/info", s.infoHandler)
	s.server.GET("/metrics", metrics.Handler())

	return s, nil
}

// Run serves requests until the context is done and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) {
	go func() {
		s.log.Infof("%s started, bind-address=%s", PluginName, s.bindAddress)
		if err := s.server.Start(s.bindAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("Error serving: %s", err)
		}
	}()

	<-ctx.Done()
	s.log.Infof("Stopping %s ...", PluginName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("Error stopping: %s", err)
	}
	s.rateLimiter.Close()
	s.log.Infof("Stopping %s ... done", PluginName)
}

// ServeHTTP serves a single request without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.ServeHTTP(w, r)
}
