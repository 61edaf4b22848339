package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/render"
)

// Handler returns the HTTP routes served in ModeServe.
func (a *App) Handler(ctx context.Context) http.Handler {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	mux.HandleFunc("/evaluate", func(w http.ResponseWriter, r *http.Request) {
		a.evaluateHandler(ctx, w, r)
	})
	mux.Handle("/metrics", a.metrics.Handler())
	return mux
}

// evaluateHandler accepts height and weight as query or form values and
// answers 200 with the result or 422 with the field errors.
func (a *App) evaluateHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item := a.evaluate(ctx, "", r.FormValue("height"), r.FormValue("weight"))

	status := http.StatusOK
	if !item.Outcome.OK() {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(render.NewJSONItem(item)); err != nil {
		a.logger.Error("Failed to write response.", "error", err)
	}
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	addr := fmt.Sprintf(":%d", a.config.HTTPPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	a.httpServer = &http.Server{
		Handler:           a.Handler(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", fmt.Sprintf("http://localhost%s", addr))
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.closeServer()
}

func (a *App) closeServer() error {
	if a.httpServer == nil {
		a.logger.Debug("HTTP server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down HTTP server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("HTTP server shut down gracefully.")
	return nil
}
