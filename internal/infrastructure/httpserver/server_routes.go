package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/", s.homeIndex)
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)
}
