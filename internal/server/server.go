package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/credo-scan/credo/internal/detect"
)

// Server exposes the detector over HTTP
type Server struct {
	echo     *echo.Echo
	detector *detect.Detector
}

// New creates the HTTP server around a detector
func New(detector *detect.Detector, verbose bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if verbose {
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogStatus:  true,
			LogURI:     true,
			LogMethod:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				fmt.Fprintf(os.Stderr, "%s %s -> %d (%dms)\n",
					v.Method, v.URI, v.Status, v.Latency.Milliseconds())
				return nil
			},
		}))
	}

	s := &Server{
		echo:     e,
		detector: detector,
	}

	e.POST("/v1/analyze", s.handleAnalyze)
	e.GET("/healthz", s.handleHealthz)

	return s
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type insufficientResponse struct {
	InsufficientInput bool   `json:"insufficient_input"`
	Message           string `json:"message"`
}

// handleAnalyze scores the posted text. Input too short to score is
// not an error; the response says so explicitly.
func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	analysis := s.detector.Analyze(req.Text)
	if analysis == nil {
		return c.JSON(http.StatusOK, insufficientResponse{
			InsufficientInput: true,
			Message:           "text must be at least 10 characters after trimming",
		})
	}

	return c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ServeHTTP makes the server usable as a plain http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr and blocks until the server stops
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
