// Package params validates camera parameter requests against a device
// capability and stages the accepted values for one atomic device update.
//
// A request is a string dictionary. Update runs every setter in a fixed
// order: a setter ignores keys the request does not carry and values equal
// to the committed ones, rejects values outside the capability, and stages
// accepted values twice, as a string change for the canonical state and as
// a typed payload in the batch for the device. Commit hands the batch to
// the device and merges the string changes only if the device accepts it,
// so the canonical state always mirrors what the device runs with.
//
// Parameters is not safe for concurrent use.
package params

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/device"
	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/log"
)

// noSlot marks a string-only attribute that has no batch payload.
const noSlot = batch.ParamMax

// Parameters owns the parameter state of one open device.
type Parameters struct {
	cap    *capability.Capability
	dev    device.Device
	config Config
	logger *slog.Logger
	events log.Logger

	sessionID string

	canonical *kv.Map
	pending   kv.Pending
	buf       *batch.Buffer

	cycle       uint64
	needRestart bool

	histogram     bool
	faceDetection bool

	closed bool
}

// New opens a parameter session: it publishes the capability strings,
// stages the default value of every attribute and commits them to dev.
func New(ctx context.Context, c *capability.Capability, dev device.Device, cfg Config) (*Parameters, error) {
	if c == nil || dev == nil {
		return nil, fmt.Errorf("%w: capability and device are required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	events := cfg.EventLogger
	if events == nil {
		events = log.NoopLogger{}
	}

	canonical := kv.New()
	if cfg.Seed != "" {
		seeded, err := kv.Unflatten(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: seed: %v", ErrInvalidConfig, err)
		}
		canonical = seeded
	}

	sessionID := uuid.New().String()
	p := &Parameters{
		cap:       c,
		dev:       dev,
		config:    cfg,
		logger:    logger.With("session", sessionID, "device", c.Name),
		events:    events,
		sessionID: sessionID,
		canonical: canonical,
		buf:       batch.New(),
	}

	p.cycle++
	if err := p.initDefaults(); err != nil {
		return nil, err
	}
	p.needRestart = false
	if err := p.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit defaults: %w", err)
	}

	p.logLifecycle("open", "")
	p.logger.Info("parameters opened", "keys", p.canonical.Len())
	return p, nil
}

// setterFunc handles one attribute (or a group of related keys) of a
// request.
type setterFunc func(p *Parameters, req *kv.Map) error

// Update validates req and stages every accepted value. It reports whether
// the staged changes need the pipeline to be restarted.
//
// All setters run even when some fail; the returned error is a *CycleError
// listing every rejected key, and the accepted attributes stay staged for
// Commit. A batch overflow aborts the cycle and discards everything staged.
func (p *Parameters) Update(req *kv.Map) (bool, error) {
	if p.closed {
		return false, ErrClosed
	}
	if req == nil {
		req = kv.New()
	}

	p.buf.Reset()
	p.pending.Reset()
	p.needRestart = false
	p.cycle++

	var failures []*ValueError
	for _, set := range updateSetters {
		err := set(p, req)
		if err == nil {
			continue
		}
		if ve, ok := err.(*ValueError); ok {
			failures = append(failures, ve)
			continue
		}
		p.buf.Reset()
		p.pending.Reset()
		p.needRestart = false
		p.logger.Error("update aborted", "cycle", p.cycle, "error", err)
		return false, err
	}

	p.logger.Debug("update staged",
		"cycle", p.cycle,
		"changes", p.pending.Len(),
		"slots", p.buf.Len(),
		"restart", p.needRestart,
		"rejected", len(failures))

	if len(failures) > 0 {
		return p.needRestart, &CycleError{Failures: failures}
	}
	return p.needRestart, nil
}

// Commit hands the staged batch to the device. On success the staged string
// changes are merged into the canonical state; on failure the canonical
// state is left untouched. The staging area is cleared either way.
func (p *Parameters) Commit(ctx context.Context) error {
	if p.closed {
		return ErrClosed
	}
	defer func() {
		p.buf.Reset()
		p.pending.Reset()
	}()

	if p.buf.Empty() && p.pending.Len() == 0 {
		return nil
	}

	start := time.Now()
	err := p.dev.Apply(ctx, p.buf)
	elapsed := time.Since(start)

	p.logCommit(log.CommitKindUpdate, p.buf, p.pending.Len(), elapsed, err)
	if err != nil {
		p.logger.Warn("commit rejected", "cycle", p.cycle, "error", err)
		return fmt.Errorf("%w: %w", ErrDeviceApply, err)
	}

	p.pending.Merge(p.canonical)
	p.logger.Debug("commit applied", "cycle", p.cycle, "duration", elapsed)
	return nil
}

// NeedsRestart reports whether the last Update staged a restart-sensitive
// change.
func (p *Parameters) NeedsRestart() bool {
	return p.needRestart
}

// Get returns the committed value of key.
func (p *Parameters) Get(key string) (string, bool) {
	return p.canonical.Get(key)
}

// Flatten renders the committed state as "k1=v1;k2=v2".
func (p *Parameters) Flatten() string {
	return p.canonical.Flatten()
}

// Canonical returns a copy of the committed state.
func (p *Parameters) Canonical() *kv.Map {
	return p.canonical.Clone()
}

// Capability returns the capability the session was opened with.
func (p *Parameters) Capability() *capability.Capability {
	return p.cap
}

// SessionID returns the identifier stamped on every event of this session.
func (p *Parameters) SessionID() string {
	return p.sessionID
}

// Close releases the session state. Further calls return ErrClosed.
func (p *Parameters) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.canonical.Reset()
	p.pending.Reset()
	p.buf.Reset()
	p.logLifecycle("closed", "")
	p.logger.Info("parameters closed")
	return nil
}

// requested returns the value req carries for key when it differs from the
// committed one.
func (p *Parameters) requested(req *kv.Map, key string) (string, bool) {
	v, ok := req.Get(key)
	if !ok {
		return "", false
	}
	if prev, had := p.canonical.Get(key); had && prev == v {
		p.logAttribute(log.AttributeEvent{Key: key, Value: v, Outcome: log.OutcomeNoop})
		return "", false
	}
	return v, true
}

// effective returns the value key will hold once the staged changes merge.
func (p *Parameters) effective(key string) (string, bool) {
	if c, ok := p.pending.Lookup(key); ok {
		if c.Remove {
			return "", false
		}
		return c.Value, true
	}
	return p.canonical.Get(key)
}

// stage records key=value in the pending set and, unless slot is noSlot,
// payload in the batch.
func (p *Parameters) stage(key, value string, slot batch.ParamType, payload any, restart bool) error {
	if err := p.pending.Set(key, value); err != nil {
		return p.reject(key, value, "%v", err)
	}
	ev := log.AttributeEvent{Key: key, Value: value, Outcome: log.OutcomeStaged, Restart: restart}
	if slot != noSlot {
		if err := p.buf.InsertValue(slot, payload); err != nil {
			return err
		}
		ev.Slot = slot.String()
	}
	if restart {
		p.needRestart = true
	}
	p.logAttribute(ev)
	return nil
}

// stageRemoval stages the removal of key if it is committed.
func (p *Parameters) stageRemoval(key string) error {
	if !p.canonical.Has(key) {
		return nil
	}
	if err := p.pending.Remove(key); err != nil {
		return p.reject(key, "", "%v", err)
	}
	p.logAttribute(log.AttributeEvent{Key: key, Outcome: log.OutcomeRemoved})
	return nil
}

// reject builds the error a setter returns for an invalid value.
func (p *Parameters) reject(key, value, format string, args ...any) error {
	reason := fmt.Sprintf(format, args...)
	p.logAttribute(log.AttributeEvent{Key: key, Value: value, Outcome: log.OutcomeRejected, Reason: reason})
	p.logger.Debug("value rejected", "key", key, "value", value, "reason", reason)
	return &ValueError{Key: key, Value: value, Reason: reason}
}

// logForced records that key was stored as requested but the device
// received a different setting.
func (p *Parameters) logForced(key, value, reason string) {
	p.logAttribute(log.AttributeEvent{Key: key, Value: value, Outcome: log.OutcomeForced, Reason: reason})
	p.logger.Debug("value forced", "key", key, "value", value, "reason", reason)
}

func (p *Parameters) newEvent(category log.Category) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: p.sessionID,
		Category:  category,
		Cycle:     p.cycle,
		Device:    p.cap.Name,
	}
}

func (p *Parameters) logAttribute(ev log.AttributeEvent) {
	e := p.newEvent(log.CategoryAttribute)
	e.Attribute = &ev
	p.events.Log(e)
}

func (p *Parameters) logCommit(kind log.CommitKind, b *batch.Buffer, changes int, elapsed time.Duration, err error) {
	ce := &log.CommitEvent{
		Kind:        kind,
		Changes:     changes,
		Success:     err == nil,
		Duration:    &elapsed,
		NeedRestart: kind == log.CommitKindUpdate && p.needRestart,
	}
	for _, slot := range b.Slots() {
		ce.Slots = append(ce.Slots, slot.String())
	}
	if err != nil {
		ce.Error = err.Error()
	}
	e := p.newEvent(log.CategoryCommit)
	e.Commit = ce
	p.events.Log(e)
}

func (p *Parameters) logLifecycle(state, reason string) {
	e := p.newEvent(log.CategoryLifecycle)
	e.Lifecycle = &log.LifecycleEvent{State: state, Reason: reason}
	p.events.Log(e)
}
