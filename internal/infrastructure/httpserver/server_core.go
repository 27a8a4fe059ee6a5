package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sre-monitoring/hello-world-app/internal/core/ports"
	customMiddleware "github.com/sre-monitoring/hello-world-app/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
}

type ServerDeps struct {
	HealthService ports.HealthService
	Greeting      string
}

type Server struct {
	echo          *echo.Echo
	config        *ServerConfig
	logger        *logrus.Logger
	healthService ports.HealthService
	greeting      string
	middleware    *customMiddleware.MiddlewareCollection
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	server := &Server{
		echo:          e,
		config:        serverConfig,
		logger:        logger,
		healthService: deps.HealthService,
		greeting:      deps.Greeting,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server, nil
}
