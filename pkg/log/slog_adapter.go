package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes session events to an slog.Logger.
// Useful for development when you want to see cycle decisions in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Rejections and failed commits
// are logged at Warn, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("category", event.Category.String()),
	}
	if event.Cycle != 0 {
		attrs = append(attrs, slog.Uint64("cycle", event.Cycle))
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}

	switch {
	case event.Attribute != nil:
		ae := event.Attribute
		attrs = append(attrs,
			slog.String("key", ae.Key),
			slog.String("outcome", ae.Outcome.String()),
		)
		if ae.Value != "" {
			attrs = append(attrs, slog.String("value", ae.Value))
		}
		if ae.Slot != "" {
			attrs = append(attrs, slog.String("slot", ae.Slot))
		}
		if ae.Restart {
			attrs = append(attrs, slog.Bool("restart", true))
		}
		if ae.Reason != "" {
			attrs = append(attrs, slog.String("reason", ae.Reason))
		}
		if ae.Outcome == OutcomeRejected {
			level = slog.LevelWarn
		}
	case event.Commit != nil:
		ce := event.Commit
		attrs = append(attrs,
			slog.String("kind", ce.Kind.String()),
			slog.Int("slots", len(ce.Slots)),
			slog.Int("changes", ce.Changes),
			slog.Bool("success", ce.Success),
		)
		if ce.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *ce.Duration))
		}
		if ce.NeedRestart {
			attrs = append(attrs, slog.Bool("restart", true))
		}
		if !ce.Success {
			attrs = append(attrs, slog.String("error", ce.Error))
			level = slog.LevelWarn
		}
	case event.Lifecycle != nil:
		attrs = append(attrs, slog.String("state", event.Lifecycle.State))
		if event.Lifecycle.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Lifecycle.Reason))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "camparam", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
