// Package api implements a read-only HTTP gateway over hootd node state.
//
// The gateway answers quiz and topic lookups by issuing ABCI store queries
// against a node's CometBFT RPC endpoint and decoding the raw state records.
// It carries no keys and signs nothing; writes always go through hootd tx
// commands or the SDK API server.
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// Server represents the read gateway
type Server struct {
	router *gin.Engine
	store  StateReader
	config *Config
}

// Config holds server configuration
type Config struct {
	Host            string
	Port            string
	ChainID         string
	NodeURI         string
	JWTSecret       []byte
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            "5000",
		ChainID:         "hoot-testnet",
		NodeURI:         "http://localhost:26657",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// NewServer creates a new gateway instance backed by the given state reader.
func NewServer(store StateReader, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// Generate JWT secret if not provided (using cryptographically secure random)
	if len(config.JWTSecret) == 0 {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		config.JWTSecret = secret

		fmt.Printf("WARNING: JWT secret generated randomly. For production, set an explicit JWT secret.\n")
		fmt.Printf("Generated JWT secret (hex): %s\n", hex.EncodeToString(secret))
	}

	server := &Server{
		store:  store,
		config: config,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with all routes and middleware
func (s *Server) setupRouter() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	// Recovery must come first to catch handler panics.
	s.router.Use(gin.Recovery())
	s.router.Use(SecurityHeadersMiddleware())
	s.router.Use(RequestIDMiddleware())
	s.router.Use(MetricsMiddleware())

	s.router.GET("/healthz", s.healthCheck)
	s.router.GET("/metrics", MetricsHandler())

	v1 := s.router.Group("/v1")
	{
		v1.GET("/quizzes/:id", s.handleGetQuizSet)
		v1.GET("/quizzes/:id/questions/:index", s.handleGetQuestionBlock)
		v1.GET("/topics/:name", s.handleGetTopic)
	}

	admin := s.router.Group("/admin")
	admin.Use(JWTAuthMiddleware(s.config.JWTSecret))
	{
		admin.GET("/config", s.handleGetConfig)
	}
}

// healthCheck returns server health status
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until an interrupt signal arrives.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		fmt.Printf("Starting HOOT read gateway on %s:%s\n", s.config.Host, s.config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	fmt.Println("Server exited")
	return nil
}
