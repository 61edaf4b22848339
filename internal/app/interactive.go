package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/form"
	"github.com/specialistvlad/bmicalc/internal/render"
)

const interactiveHelp = `Commands:
  height <cm>      set the height field
  weight <kg>      set the weight field
  <cm> <kg>        set both fields and calculate
  calc             calculate BMI from the current fields
  reset            clear the form
  quit             leave
`

// runInteractive reads commands line by line and turns them into form
// events. The evaluator only runs on calc. Cancelling ctx ends the session
// cleanly, even while waiting for input.
func (a *App) runInteractive(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	state := form.State{}

	fmt.Fprint(a.outW, "BMI Calculator\n"+interactiveHelp)

	lines, readErr, stop := readLines(a.inR)
	defer stop()

loop:
	for {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprint(a.outW, "> ")

		var line string
		select {
		case <-ctx.Done():
			break loop
		case l, open := <-lines:
			if !open {
				fmt.Fprintln(a.outW)
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				logger.Debug("Interactive session ended.")
				return nil
			}
			line = l
		}

		events, quit, ok := parseCommand(line)
		if quit {
			fmt.Fprintln(a.outW)
			logger.Debug("Interactive session ended.")
			return nil
		}
		if !ok {
			fmt.Fprint(a.outW, interactiveHelp)
			continue
		}

		for _, ev := range events {
			state = state.Apply(ev)
			if _, submitted := ev.(form.Submitted); submitted && state.Last != nil {
				a.record(ctx, render.Item{Height: state.HeightText, Weight: state.WeightText, Outcome: *state.Last})
			}
		}
		if err := render.Form(a.outW, state.View()); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.outW)
	logger.Debug("Interactive session cancelled.")
	return nil
}

// readLines scans r in its own goroutine so the caller can stop waiting on
// cancellation. lines is closed at end of input, after the scanner error
// (nil on EOF) has been sent on errc. stop releases the goroutine; a read
// already blocked on r stays blocked until r returns.
func readLines(r io.Reader) (lines <-chan string, errc <-chan error, stop func()) {
	out := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-done:
				return
			}
		}
		errs <- scanner.Err()
	}()

	var once sync.Once
	return out, errs, func() { once.Do(func() { close(done) }) }
}

// parseCommand maps one input line to form events.
func parseCommand(line string) (events []form.Event, quit bool, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, true
	}

	cmd := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case "height", "h":
		return []form.Event{form.HeightChanged{Text: arg}}, false, true
	case "weight", "w":
		return []form.Event{form.WeightChanged{Text: arg}}, false, true
	case "calc", "c":
		return []form.Event{form.Submitted{}}, false, true
	case "reset":
		return []form.Event{form.Reset{}}, false, true
	case "quit", "exit", "q":
		return nil, true, true
	}

	if len(fields) == 2 {
		return []form.Event{
			form.HeightChanged{Text: fields[0]},
			form.WeightChanged{Text: fields[1]},
			form.Submitted{},
		}, false, true
	}
	return nil, false, false
}
