package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/craftbar/mixology/internal/httpapi/handlers"
	"github.com/craftbar/mixology/internal/httpapi/middleware"
	"github.com/craftbar/mixology/pkg/config"
)

type APIServer struct {
	config   *config.AppConfig
	router   *gin.Engine
	server   *http.Server
	handlers *handlers.Handlers
}

func NewAPIServer(cfg *config.AppConfig, h *handlers.Handlers) *APIServer {
	if cfg.App.Environment == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(&cfg.APIServer))

	s := &APIServer{
		config:   cfg,
		router:   router,
		handlers: h,
	}

	s.setupRoutes()
	return s
}

func (s *APIServer) setupRoutes() {
	v1 := s.router.Group("/api/v1")

	v1.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": s.config.App.Name,
			"status":  "running",
		})
	})

	v1.GET("/cocktails", s.handlers.ListCocktails)
	v1.POST("/cocktails", s.handlers.CreateCocktail)
	v1.GET("/cocktails/:id", s.handlers.GetCocktail)
	v1.PUT("/cocktails/:id", s.handlers.UpdateCocktail)
	v1.DELETE("/cocktails/:id", s.handlers.DeleteCocktail)

	v1.POST("/cocktails/:id/rating", s.handlers.RateCocktail)
	v1.GET("/cocktails/:id/rating", s.handlers.GetUserRating)
	v1.DELETE("/cocktails/:id/rating", s.handlers.RemoveRating)

	v1.GET("/search", s.handlers.SearchCocktails)
	v1.GET("/search/bases", s.handlers.GetAlcoholBases)
	v1.GET("/search/difficulties", s.handlers.GetDifficulties)

	v1.POST("/auth/register", s.handlers.Register)
	v1.POST("/auth/login", s.handlers.Login)
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *APIServer) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.config.APIServer.Host, s.config.APIServer.Port),
		Handler: s.router,
	}

	g := &errgroup.Group{}

	g.Go(func() error {
		logrus.WithField("address", s.server.Addr).Info("starting http API server")
		if err := s.server.ListenAndServe(); err != nil {
			if err == http.ErrServerClosed {
				logrus.Info("http API server stopped")
				return nil
			}
			return fmt.Errorf("failed to start http API server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("turning down http API server")

		if err := s.server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("error during http API server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
