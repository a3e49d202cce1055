// Package server exposes the guidance subsystems over HTTP with gin.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/assistant"
	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/practice"
	"github.com/riabhaumik/PathwiseAI/internal/roadmap"
)

// Config carries the HTTP server settings.
type Config struct {
	Addr         string   `mapstructure:"addr"`
	AllowOrigins []string `mapstructure:"allow-origins"`
	Debug        bool     `mapstructure:"debug"`
}

// Server wraps the gin engine and its dependencies.
type Server struct {
	engine *gin.Engine
	addr   string
	logger *zap.Logger
}

// Deps are the subsystems the handlers route into.
type Deps struct {
	Store       *catalog.Store
	Synthesizer *roadmap.Synthesizer
	Assistant   *assistant.Assistant
	Runner      practice.Runner
	Logger      *zap.Logger
}

func New(cfg Config, deps Deps) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(deps.Logger))
	engine.Use(corsMiddleware(cfg.AllowOrigins))

	h := &handlers{deps: deps}
	engine.GET("/health", h.health)

	api := engine.Group("/api")
	{
		api.GET("/careers", h.listCareers)
		api.GET("/careers/:name", h.getCareer)
		api.GET("/careers/:name/skills", h.getCareerSkills)
		api.GET("/resources/:category", h.getResources)
		api.GET("/interview/:category", h.getInterviewQuestions)
		api.GET("/math-resources", h.getMathResources)
		api.GET("/math-resources/topics", h.getMathTopics)
		api.GET("/math-resources/search", h.searchMathResources)
		api.POST("/roadmap", h.generateRoadmap)
		api.POST("/chat", h.chat)
		api.POST("/practice/execute", h.executePractice)
	}

	return &Server{engine: engine, addr: cfg.Addr, logger: deps.Logger}
}

// Run serves until the context is cancelled, then drains with a short
// shutdown grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine { return s.engine }

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
