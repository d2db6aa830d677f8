// Package server wires the portfolio page and the contact intake endpoint
// onto a gin engine.
package server

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pooja2309/portfolio/internal/contact"
	"github.com/pooja2309/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Intake creates contact submissions.
type Intake interface {
	Create(ctx context.Context, in contact.Input, clientIP string) (*contact.Submission, error)
}

// Server holds the routes and their dependencies.
type Server struct {
	engine  *gin.Engine
	intake  Intake
	content *content.Content
	logger  *zap.Logger
}

// New builds the engine. logger may be nil.
func New(intake Intake, site *content.Content, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:  gin.New(),
		intake:  intake,
		content: site,
		logger:  logger,
	}
	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.engine.SetHTMLTemplate(loadTemplates())
	s.routes()
	return s
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	s.engine.StaticFS("/static", http.FS(static))

	s.engine.GET("/", s.home)
	s.engine.GET("/contact-form", s.contactForm)
	s.engine.GET("/work-content", s.workContent)
	s.engine.GET("/education-content", s.educationContent)
	s.engine.GET("/projects-content", s.projectsContent)
	s.engine.POST("/contact", s.submitContactForm)

	api := s.engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.POST("/contact", s.createSubmission)
}

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
		"year": func() int { return time.Now().Year() },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") {
			return
		}
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
