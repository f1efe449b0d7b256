package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/akmonengine/sierpinski"
)

// newLogger creates a logger writing to w at level, with short timestamps
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() when none is attached
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logEvents reports the fractal lifecycle on logger
func logEvents(f *sierpinski.Fractal, logger *log.Logger) {
	f.Events.Subscribe(sierpinski.LEVEL_CHANGED, func(event sierpinski.Event) {
		e := event.(sierpinski.LevelChangedEvent)
		logger.Info("level changed", "from", e.From, "to", e.To)
	})
	f.Events.Subscribe(sierpinski.LEVEL_REJECTED, func(event sierpinski.Event) {
		e := event.(sierpinski.LevelRejectedEvent)
		logger.Warn("level out of range", "current", e.Current, "requested", e.Requested)
	})
	f.Events.Subscribe(sierpinski.TRANSITION_STARTED, func(event sierpinski.Event) {
		e := event.(sierpinski.TransitionStartedEvent)
		logger.Debug("transition started", "level", e.Level, "slots", e.Slots, "collapsing", e.Collapsing)
	})
	f.Events.Subscribe(sierpinski.TRANSITION_FINISHED, func(event sierpinski.Event) {
		e := event.(sierpinski.TransitionFinishedEvent)
		logger.Debug("transition finished", "level", e.Level)
	})
}
