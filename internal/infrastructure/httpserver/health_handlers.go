package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health check handler. Dependency failures are reported in the body only;
// the status code stays 200 so the endpoint stays informational.
func (s *Server) healthCheck(c echo.Context) error {
	report := s.healthService.Report(c.Request().Context())
	recordDependencyStatus(report.Services)
	return c.JSON(http.StatusOK, report)
}
