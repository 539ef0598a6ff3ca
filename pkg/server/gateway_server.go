package server

import (
	"fmt"

	"github.com/DoisLONG/GenAIStudio/pkg/config"
	handlers "github.com/DoisLONG/GenAIStudio/pkg/handlers/http"
	"github.com/DoisLONG/GenAIStudio/pkg/middleware"
	"github.com/DoisLONG/GenAIStudio/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	GatewayServerDI struct {
		MiddlewareTransport *middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	GatewayServer struct {
		*BaseServer
		middlewareTransport *middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewGatewayServer(di GatewayServerDI) *GatewayServer {
	return &GatewayServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

// Run listens on the gateway and metrics ports and blocks until either
// listener stops. A metrics listener failure shuts the gateway down too.
func (s *GatewayServer) Run() error {
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	s.WithRouters(router.NewGatewayRouter(
		s.middlewareTransport,
		s.handlerTransport,
		s.Config.Server.StaticDir,
	))

	listenErr := make(chan error, 2)

	if s.metricsApp != nil {
		metricsAddr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
		s.Logger.WithField("addr", metricsAddr).Info("Starting metrics server")
		go func() {
			listenErr <- s.metricsApp.Listen(metricsAddr)
		}()
	}

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("Starting gateway server")
	go func() {
		listenErr <- s.Router.Listen(addr)
	}()

	err := <-listenErr
	if err != nil {
		_ = s.Shutdown()
	}
	return err
}

func (s *GatewayServer) Shutdown() error {
	if s.metricsApp != nil {
		_ = s.metricsApp.Shutdown()
	}
	return s.Router.Shutdown()
}
