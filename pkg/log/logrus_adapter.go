package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter writes session events to a logrus logger, for hosts that
// already route their logs through logrus.
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

// NewLogrusAdapter creates an adapter writing to logger. A nil logger uses
// logrus.StandardLogger().
func NewLogrusAdapter(logger logrus.FieldLogger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{logger: logger}
}

// Log writes the event with its fields. Rejections and failed commits are
// logged at Warn, everything else at Debug.
func (a *LogrusAdapter) Log(event Event) {
	fields := logrus.Fields{
		"session":  event.SessionID,
		"category": event.Category.String(),
	}
	if event.Cycle != 0 {
		fields["cycle"] = event.Cycle
	}
	if event.Device != "" {
		fields["device"] = event.Device
	}

	warn := false
	switch {
	case event.Attribute != nil:
		ae := event.Attribute
		fields["key"] = ae.Key
		fields["outcome"] = ae.Outcome.String()
		if ae.Value != "" {
			fields["value"] = ae.Value
		}
		if ae.Slot != "" {
			fields["slot"] = ae.Slot
		}
		if ae.Restart {
			fields["restart"] = true
		}
		if ae.Reason != "" {
			fields["reason"] = ae.Reason
		}
		warn = ae.Outcome == OutcomeRejected
	case event.Commit != nil:
		ce := event.Commit
		fields["kind"] = ce.Kind.String()
		fields["slots"] = len(ce.Slots)
		fields["changes"] = ce.Changes
		fields["success"] = ce.Success
		if ce.Duration != nil {
			fields["duration"] = ce.Duration.String()
		}
		if !ce.Success {
			fields["error"] = ce.Error
			warn = true
		}
	case event.Lifecycle != nil:
		fields["state"] = event.Lifecycle.State
		if event.Lifecycle.Reason != "" {
			fields["reason"] = event.Lifecycle.Reason
		}
	}

	entry := a.logger.WithFields(fields)
	if warn {
		entry.Warn("camparam")
		return
	}
	entry.Debug("camparam")
}

// Compile-time interface satisfaction check.
var _ Logger = (*LogrusAdapter)(nil)
