package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/credo-scan/credo/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyze HTTP service",
	Long: `Serve exposes the detector over HTTP:
- POST /v1/analyze  {"text": "..."}  -> analysis JSON
- GET  /healthz

Text shorter than 10 characters after trimming is not an error; the
response marks it as insufficient input.

Example:
  credo serve
  credo serve --addr :9090 --catalog rules.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&scanCatalog, "catalog", "", "custom rule catalog YAML (default: built-in)")
}

func runServe(cmd *cobra.Command, args []string) error {
	detector, err := buildDetector(scanCatalog)
	if err != nil {
		return err
	}

	s := server.New(detector, verbose)

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Listening on %s\n", serveAddr)
		if err := s.Start(serveAddr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	fmt.Fprintf(os.Stderr, "Shutting down...\n")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
