package httpserver

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
)

//go:embed templates
var templateFS embed.FS

const homeTemplate = "home/index"

// homePage is the view model rendered at the site root.
type homePage struct {
	Message        string
	DatabaseStatus health.Status
	RedisStatus    health.Status
}

// templateRenderer adapts html/template to echo.Renderer.
type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() (*templateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}
	return &templateRenderer{templates: t}, nil
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// homeIndex renders the greeting page; dependency status is informational.
func (s *Server) homeIndex(c echo.Context) error {
	report := s.healthService.Report(c.Request().Context())
	recordDependencyStatus(report.Services)

	page := homePage{
		Message:        s.greeting,
		DatabaseStatus: report.Services[health.ServiceDatabase],
		RedisStatus:    report.Services[health.ServiceRedis],
	}
	return c.Render(http.StatusOK, homeTemplate, page)
}
