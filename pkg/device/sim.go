package device

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/camparam/camparam-go/pkg/batch"
)

// SimConfig configures a simulated device.
type SimConfig struct {
	// Name identifies the device in log output.
	Name string

	// Logger receives a debug record per applied slot. Nil discards.
	Logger *slog.Logger
}

// Sim is an in-memory Device. Batches travel through the same CBOR frame a
// real pipeline would receive, and the last payload of every slot is kept so
// Fetch can report it back.
type Sim struct {
	name   string
	logger *slog.Logger

	mu       sync.Mutex
	state    map[batch.ParamType][]byte
	applied  int
	failNext []error
}

var _ Device = (*Sim)(nil)

// NewSim creates a simulated device with no applied state.
func NewSim(cfg SimConfig) *Sim {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	name := cfg.Name
	if name == "" {
		name = "sim"
	}
	return &Sim{
		name:   name,
		logger: logger.With("device", name),
		state:  make(map[batch.ParamType][]byte),
	}
}

// FailNext makes the next Apply return err without touching device state.
// Calls queue up; a nil err means ErrApplyRejected.
func (s *Sim) FailNext(err error) {
	if err == nil {
		err = ErrApplyRejected
	}
	s.mu.Lock()
	s.failNext = append(s.failNext, err)
	s.mu.Unlock()
}

// Apply implements Device.
func (s *Sim) Apply(ctx context.Context, b *batch.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame, err := b.MarshalFrame()
	if err != nil {
		return err
	}
	received, err := batch.UnmarshalFrame(frame)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.failNext) > 0 {
		err := s.failNext[0]
		s.failNext = s.failNext[1:]
		s.logger.Debug("batch rejected", "slots", received.Len(), "error", err)
		return err
	}

	for slot, payload := range received.All() {
		s.state[slot] = append([]byte(nil), payload...)
		s.logger.Debug("slot applied", "slot", slot.String(), "size", len(payload))
	}
	s.applied++
	s.logger.Debug("batch applied", "slots", received.Len(), "frame_size", len(frame))
	return nil
}

// Fetch implements Device. Slots the device has never seen are left empty.
func (s *Sim) Fetch(ctx context.Context, b *batch.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range b.Slots() {
		payload, ok := s.state[slot]
		if !ok {
			continue
		}
		if err := b.Insert(slot, payload); err != nil {
			return fmt.Errorf("fetch %s: %w", slot, err)
		}
	}
	return nil
}

// Payload returns the last applied payload for slot.
func (s *Sim) Payload(slot batch.ParamType) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state[slot]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, true
}

// Applied returns the number of successfully applied batches.
func (s *Sim) Applied() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Name returns the device name.
func (s *Sim) Name() string {
	return s.name
}
