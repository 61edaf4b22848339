package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/specialistvlad/bmicalc/internal/bmi"
	"github.com/specialistvlad/bmicalc/internal/config"
	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/metrics"
	"github.com/specialistvlad/bmicalc/internal/publish"
	"github.com/specialistvlad/bmicalc/internal/render"
)

// ErrInvalidInput is returned by Run when at least one evaluated
// measurement failed validation. The errors themselves have already been
// rendered to the output.
var ErrInvalidInput = errors.New("invalid input")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	inR       io.Reader
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	renderer  render.Renderer
	metrics   *metrics.Recorder
	publisher publish.Publisher

	httpServer *http.Server
}

// Option customises an App.
type Option func(*App)

// WithInput sets the stream interactive mode reads from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(a *App) { a.inR = r }
}

// WithPublisher injects a publisher instead of dialing PublishURL.
func WithPublisher(p publish.Publisher) Option {
	return func(a *App) { a.publisher = p }
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW, so machine-readable output is never mixed with log lines.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	renderer, err := render.New(appConfig.Format)
	if err != nil {
		return nil, err
	}

	a := &App{
		outW:     outW,
		inR:      os.Stdin,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		renderer: renderer,
		metrics:  metrics.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	logger.Debug("App created.", "mode", appConfig.Mode().String(), "format", appConfig.Format)
	return a, nil
}

// Metrics returns the application's metrics recorder. This is primarily for testing.
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}

// connectPublisher dials the configured view unless one was injected.
func (a *App) connectPublisher(ctx context.Context) error {
	if a.publisher != nil {
		return nil
	}
	if a.config.PublishURL == "" {
		a.publisher = publish.Nop{}
		return nil
	}

	p, err := publish.Dial(ctx, publish.Options{
		URL:                a.config.PublishURL,
		Namespace:          a.config.PublishNamespace,
		InsecureSkipVerify: a.config.PublishInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to view: %w", err)
	}
	a.publisher = p
	return nil
}

// evaluate runs the evaluator and feeds the outcome to metrics and the
// publisher. Publishing failures are logged, never returned: the local
// result is authoritative.
func (a *App) evaluate(ctx context.Context, name, height, weight string) render.Item {
	logger := ctxlog.FromContext(ctx)

	outcome := bmi.EvaluateOutcome(height, weight)
	item := render.Item{Name: name, Height: height, Weight: weight, Outcome: outcome}
	a.record(ctx, item)

	if outcome.OK() {
		logger.Debug("Evaluation succeeded.", "name", name, "bmi", outcome.Result.Display(), "status", outcome.Result.Status.String())
	} else {
		logger.Debug("Evaluation rejected.", "name", name, "errors", outcome.Errors.Error())
	}
	return item
}

func (a *App) record(ctx context.Context, item render.Item) {
	a.metrics.Observe(item.Outcome)
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, item); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to publish outcome.", "name", item.Name, "error", err)
	}
}
