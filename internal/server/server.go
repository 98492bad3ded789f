// Package server exposes the quiz, report and question administration over
// HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minatgo/minatgo/internal/admin"
	"github.com/minatgo/minatgo/internal/auth"
	"github.com/minatgo/minatgo/internal/event"
	"github.com/minatgo/minatgo/internal/insight"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/store"
)

// Deps are the collaborators the handlers call into.
type Deps struct {
	Questions questions.Source
	Admin     *admin.Service
	Auth      *auth.Authenticator
	Limiter   *auth.Limiter
	Contacts  *store.ContactRepo
	Recorder  *event.Recorder
	Insight   *insight.Service // optional
	Logger    *slog.Logger
	Origins   []string
}

// Server is the HTTP API.
type Server struct {
	deps    Deps
	log     *slog.Logger
	metrics *metrics
	engine  *gin.Engine
}

// New builds the router. Metrics are registered on a private registry so
// several servers can coexist in one process.
func New(deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		deps:    deps,
		log:     log,
		metrics: newMetrics(reg),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.metrics.middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.GET("/questions", s.listQuestions)
	api.POST("/results", s.submitResult)
	api.POST("/results/pdf", s.resultPDF)
	api.POST("/contact", s.contact)
	api.POST("/admin/login", s.login)

	adm := api.Group("/admin", s.requireAdmin())
	adm.GET("/questions", s.adminList)
	adm.POST("/questions", s.adminCreate)
	adm.GET("/questions/:id", s.adminGet)
	adm.PUT("/questions/:id", s.adminUpdate)
	adm.DELETE("/questions/:id", s.adminDelete)

	s.engine = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for at most grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
