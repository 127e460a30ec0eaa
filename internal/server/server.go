// internal/server/server.go
package server

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"strconv"
	"time"

	"candy-defense/pkg/logger"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server is the read-only debug surface: it never mutates the simulation,
// only reads published snapshots and relays events.
type Server struct {
	store       *SnapshotStore
	broadcaster *Broadcaster
	router      *gin.Engine
	httpServer  *http.Server
	started     time.Time
}

// New builds the router. Call Run to start listening on addr.
func New(addr string, store *SnapshotStore, broadcaster *Broadcaster) *Server {
	s := &Server{
		store:       store,
		broadcaster: broadcaster,
		started:     time.Now(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	r.GET("/health", s.handleHealth)
	debug := r.Group("/debug")
	{
		debug.GET("/state", s.handleState)
		debug.GET("/snapshot.png", s.handleSnapshotPNG)
		debug.GET("/events", s.handleEvents)
		debug.Any("/pprof/*profile", gin.WrapH(http.DefaultServeMux))
	}

	s.router = r
	s.httpServer = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run блокирует до Shutdown или ошибки прослушивания.
func (s *Server) Run() error {
	logger.Log.Infof("debug server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown closes the event feed and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.broadcaster.Close()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	_, published := s.store.Latest()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"published": published,
		"clients":   s.broadcaster.Clients(),
		"dropped":   s.broadcaster.Dropped(),
	})
}

func (s *Server) handleState(c *gin.Context) {
	snap, ok := s.store.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleSnapshotPNG(c *gin.Context) {
	factor := 1.0
	if raw := c.Query("scale"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scale must be a positive number"})
			return
		}
		factor = v
	}
	snap, ok := s.store.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
		return
	}

	img := ScaleSnapshot(RenderSnapshot(snap), factor)
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := imaging.Encode(c.Writer, img, imaging.PNG); err != nil {
		logger.Log.WithError(err).Warn("failed to encode snapshot")
	}
}

// handleEvents обрабатывает подключение по WebSocket
func (s *Server) handleEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	client := NewClient(s.broadcaster, conn)
	logger.Log.Debug("event feed client connected")

	go client.writePump()
	go client.readPump()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("debug request")
	}
}
