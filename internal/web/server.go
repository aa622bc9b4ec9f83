package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthassistant/internal/diagnosis"
	"github.com/Skufu/healthassistant/internal/distribution"
	"github.com/Skufu/healthassistant/internal/history"
)

//go:embed templates/*.html
var templateFS embed.FS

// HealthChecker is satisfied by the Postgres assessment log.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Deps are the read-only collaborators shared by every request.
type Deps struct {
	Assessor *diagnosis.Assessor
	Dataset  *distribution.Dataset
	Recorder history.Recorder
	// DB is nil when the database is disabled.
	DB          HealthChecker
	CORSOrigins []string
}

type Server struct {
	router    *gin.Engine
	templates *template.Template
	assessor  *diagnosis.Assessor
	dataset   *distribution.Dataset
	recorder  history.Recorder
	db        HealthChecker
	now       func() time.Time
}

// NewServer parses the embedded templates and registers all routes.
func NewServer(deps Deps) (*Server, error) {
	if deps.Assessor == nil || deps.Dataset == nil {
		return nil, fmt.Errorf("assessor and dataset are required")
	}
	if deps.Recorder == nil {
		deps.Recorder = history.NewMemoryRecorder(history.MaxLimit)
	}
	if len(deps.CORSOrigins) == 0 {
		deps.CORSOrigins = []string{"*"}
	}

	templates, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		templates: templates,
		assessor:  deps.Assessor,
		dataset:   deps.Dataset,
		recorder:  deps.Recorder,
		db:        deps.DB,
		now:       time.Now,
	}
	s.setupMiddleware(deps.CORSOrigins)
	s.setupRoutes()
	return s, nil
}

func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)
}

func (s *Server) setupRoutes() {
	for _, p := range Pages {
		s.router.GET(p.Path(), s.showPage(p))
	}
	for _, d := range diagnosis.Diseases {
		s.router.POST(pageFor(d).Path(), s.submitForm(d))
	}
	s.router.GET("/distribution.xlsx", s.downloadWorkbook)

	api := s.router.Group("/api")
	api.POST("/predict/:disease", s.handlePredict)
	api.GET("/schemas/:disease", s.handleSchema)
	api.GET("/distribution", s.handleDistribution)
	api.GET("/bins/:rule", s.handleBin)
	api.GET("/assessments", s.handleAssessments)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/readyz", s.handleReady)
}

func (s *Server) handleReady(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

// record never fails the request; a broken log only costs the audit entry.
func (s *Server) record(ctx context.Context, d diagnosis.Diagnosis) {
	if err := s.recorder.Record(ctx, history.NewEntry(d, s.now())); err != nil {
		log.Printf("[web] failed to record %s assessment: %v", d.Disease.Slug(), err)
	}
}

// renderTemplate executes into a buffer first so a template error never leaves a half-written page.
func (s *Server) renderTemplate(c *gin.Context, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[web] template error for %s: %v", name, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "template rendering failed"})
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

var templateFuncs = template.FuncMap{
	"num":   func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"fixed": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"pct":   func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) + "%" },
	"rate":  func(v float64) string { return strconv.FormatFloat(v*100, 'f', 1, 64) + "%" },
	"pie":   pieGradient,
}

// pieGradient draws a chart's slices as a CSS conic gradient.
func pieGradient(chart distribution.Chart) template.CSS {
	var buf bytes.Buffer
	buf.WriteString("conic-gradient(")
	start := 0.0
	for i, c := range chart.Counts {
		if i > 0 {
			buf.WriteString(", ")
		}
		end := start + c.Percent
		color := chart.Colors[i%len(chart.Colors)]
		fmt.Fprintf(&buf, "%s %.1f%% %.1f%%", color, start, end)
		start = end
	}
	buf.WriteString(")")
	return template.CSS(buf.String())
}
