package server

import (
	"net/http"
	"time"

	"github.com/existflow/ironcal/internal/db"
	"github.com/existflow/ironcal/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the calendar API server
type Server struct {
	db   *db.DB
	echo *echo.Echo

	// now is the clock used for stats and health; overridable in tests.
	now func() time.Time
}

// New creates a new server backed by the given store
func New(database *db.DB) *Server {
	s := &Server{
		db:  database,
		now: time.Now,
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")
	api.GET("/events", s.handleListEvents)
	api.POST("/events", s.handleCreateEvent)
	api.GET("/events/:id", s.handleGetEvent)
	api.PUT("/events/:id", s.handleUpdateEvent)
	api.DELETE("/events/:id", s.handleDeleteEvent)
	api.GET("/events/date/:date", s.handleEventsByDate)
	api.POST("/events/conflicts", s.handleCheckConflicts)
	api.GET("/stats", s.handleStats)

	s.echo = e
}

// Close closes the database connection
func (s *Server) Close() error {
	return s.db.Close()
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
	})
}
