package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/render"
)

// Run executes the mode selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode().String())

	if err := a.connectPublisher(ctx); err != nil {
		return err
	}
	defer func() {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("Failed to close publisher.", "error", err)
		}
	}()

	var err error
	switch a.config.Mode() {
	case ModeSingle:
		err = a.runSingle(ctx)
	case ModeBatch:
		err = a.runBatch(ctx)
	case ModeInteractive:
		err = a.runInteractive(ctx)
	case ModeCategories:
		err = render.Categories(a.outW)
	case ModeServe:
		err = a.serve(ctx)
	default:
		err = fmt.Errorf("unsupported mode %d", a.config.Mode())
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) runSingle(ctx context.Context) error {
	item := a.evaluate(ctx, "", a.config.Height, a.config.Weight)
	if err := a.renderer.Render(a.outW, []render.Item{item}); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	if !item.Outcome.OK() {
		return ErrInvalidInput
	}
	return nil
}

func (a *App) runBatch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	model, err := a.loader.Load(ctx, a.config.InputPaths...)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	if len(model.Measurements) == 0 {
		logger.Warn("No measurements found in input.", "paths", a.config.InputPaths)
		return nil
	}

	items := make([]render.Item, 0, len(model.Measurements))
	invalid := 0
	for _, m := range model.Measurements {
		item := a.evaluate(ctx, m.Name, m.Height, m.Weight)
		if !item.Outcome.OK() {
			invalid++
		}
		items = append(items, item)
	}

	if err := a.renderer.Render(a.outW, items); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	logger.Info("Batch evaluated.", "measurements", len(items), "invalid", invalid)

	if invalid > 0 {
		return fmt.Errorf("%d of %d measurements rejected: %w", invalid, len(items), ErrInvalidInput)
	}
	return nil
}
