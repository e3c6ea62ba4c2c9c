// Package server provides the HTTP API for sempress.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/sempress/internal/encoder"
	"github.com/fyrsmithlabs/sempress/internal/engine"
	"github.com/fyrsmithlabs/sempress/internal/logging"
)

// Server provides HTTP endpoints for the encoding engine.
type Server struct {
	echo   *echo.Echo
	engine *engine.Engine
	logger *logging.Logger
	config *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// RateLimit is the sustained requests-per-second budget per client IP.
	// Zero disables rate limiting.
	RateLimit float64
	// MaxBodyBytes caps request body size. Zero means 1MB.
	MaxBodyBytes int64
}

// NewServer creates a new HTTP server over an encoding engine.
func NewServer(eng *engine.Engine, logger *logging.Logger, cfg *Config) (*Server, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8750,
		}
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = 1 << 20
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%d", cfg.MaxBodyBytes)))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				logging.String("method", c.Request().Method),
				logging.String("uri", c.Request().RequestURI),
				logging.Int("status", c.Response().Status),
				logging.Duration("duration", duration),
				logging.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:   e,
		engine: eng,
		logger: logger,
		config: cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/encode", s.handleEncode)
	v1.POST("/encode/records", s.handleEncodeRecords)
}

// EncodeRequest is the request body for POST /api/v1/encode.
type EncodeRequest struct {
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

// EncodeResponse is the response body for both encode endpoints.
type EncodeResponse struct {
	Compressed       string            `json:"compressed"`
	OriginalTokens   int               `json:"original_tokens"`
	CompressedTokens int               `json:"compressed_tokens"`
	CompressionRatio float64           `json:"compression_ratio"`
	FellBack         bool              `json:"fell_back"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	RecordErrors     []string          `json:"record_errors,omitempty"`
}

// RecordsRequest is the request body for POST /api/v1/encode/records.
type RecordsRequest struct {
	Name    string           `json:"name"`
	Records []map[string]any `json:"records"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Language string `json:"language"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Language: s.engine.Language()})
}

// handleEncode compresses one piece of text content.
func (s *Server) handleEncode(c echo.Context) error {
	var req EncodeRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid encode request", logging.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content field is required")
	}

	kind := encoder.Kind(req.Kind)
	if kind == "" {
		kind = encoder.KindPrompt
	}
	switch kind {
	case encoder.KindPrompt, encoder.KindTaskPrompt, encoder.KindConfigPrompt, encoder.KindTranscript:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported kind %q", req.Kind))
	}

	ctx := logging.WithRequestID(c.Request().Context(),
		c.Response().Header().Get(echo.HeaderXRequestID))

	result, err := s.engine.Encode(ctx, req.Content, kind)
	if err != nil {
		s.logger.Ctx(ctx).Warn("encode failed", logging.Error(err))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, toResponse(result))
}

// handleEncodeRecords compresses a batch of structured records.
func (s *Server) handleEncodeRecords(c echo.Context) error {
	var req RecordsRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid records request", logging.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.Records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "records field is required")
	}

	ctx := logging.WithRequestID(c.Request().Context(),
		c.Response().Header().Get(echo.HeaderXRequestID))

	result, err := s.engine.EncodeRecords(ctx, req.Name, req.Records)
	if err != nil {
		s.logger.Ctx(ctx).Warn("records encode failed", logging.Error(err))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, toResponse(result))
}

func toResponse(r *engine.Result) EncodeResponse {
	resp := EncodeResponse{
		Compressed:       r.Compressed,
		OriginalTokens:   r.NTokens,
		CompressedTokens: r.CTokens,
		CompressionRatio: r.CompressionRatio(),
		FellBack:         r.FellBack,
		Metadata:         r.Metadata,
	}
	for _, re := range r.RecordErrors {
		resp.RecordErrors = append(resp.RecordErrors, re.Error())
	}
	return resp
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", logging.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the echo handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }
