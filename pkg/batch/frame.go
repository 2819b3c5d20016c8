package batch

import (
	"fmt"

	"github.com/camparam/camparam-go/pkg/wire"
)

// FrameEntry is one populated slot in an encoded batch.
type FrameEntry struct {
	_       struct{} `cbor:",toarray"`
	Slot    ParamType
	Payload []byte
}

// Frame is the CBOR form of a buffer as exchanged with a device.
// Entries appear in list order.
type Frame struct {
	Entries []FrameEntry `cbor:"1,keyasint"`
}

// MarshalFrame encodes the populated slots of the buffer.
func (b *Buffer) MarshalFrame() ([]byte, error) {
	var f Frame
	for slot, payload := range b.All() {
		p := make([]byte, len(payload))
		copy(p, payload)
		f.Entries = append(f.Entries, FrameEntry{Slot: slot, Payload: p})
	}
	return wire.Marshal(f)
}

// UnmarshalFrame decodes an encoded batch into a new buffer.
func UnmarshalFrame(data []byte) (*Buffer, error) {
	var f Frame
	if err := wire.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode batch frame: %w", err)
	}

	b := New()
	for _, e := range f.Entries {
		if err := b.Insert(e.Slot, e.Payload); err != nil {
			return nil, err
		}
	}
	return b, nil
}
