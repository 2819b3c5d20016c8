// Package batch implements the parameter update buffer handed to the device.
//
// A Buffer holds one fixed-size payload per ParamType slot and an intrusive
// singly linked list over the slot indices that records which slots are
// populated. The list is always in strictly ascending slot order and ends at
// the ParamMax sentinel, so the device walks only populated slots.
package batch

import (
	"errors"
	"fmt"
	"iter"

	"github.com/camparam/camparam-go/pkg/wire"
)

// MaxEntrySize is the payload capacity of a single slot in bytes.
const MaxEntrySize = 256

// Batch errors.
var (
	// ErrBatchOverflow is returned when a payload does not fit in its slot.
	// It signals an integration fault, not a user input problem.
	ErrBatchOverflow = errors.New("payload exceeds slot capacity")

	// ErrInvalidSlot is returned for slots outside the enumeration.
	ErrInvalidSlot = errors.New("invalid parameter slot")
)

// Buffer stages parameter payloads for one atomic device update.
// The zero value is not ready for use; call New or Reset.
type Buffer struct {
	first   ParamType
	next    [ParamMax]ParamType
	size    [ParamMax]uint16
	entries [ParamMax][MaxEntrySize]byte
}

// New returns an empty buffer.
func New() *Buffer {
	b := &Buffer{}
	b.Reset()
	return b
}

// Reset clears every slot and empties the list.
func (b *Buffer) Reset() {
	*b = Buffer{}
	b.first = ParamMax
	for i := range b.next {
		b.next[i] = ParamMax
	}
}

// Insert copies payload into slot and links the slot into the list.
// Re-inserting a linked slot overwrites its payload in place.
func (b *Buffer) Insert(slot ParamType, payload []byte) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if len(payload) > MaxEntrySize {
		return fmt.Errorf("%w: %s needs %d bytes, capacity %d",
			ErrBatchOverflow, slot, len(payload), MaxEntrySize)
	}

	b.link(slot)

	b.entries[slot] = [MaxEntrySize]byte{}
	copy(b.entries[slot][:], payload)
	b.size[slot] = uint16(len(payload))
	return nil
}

// InsertValue encodes v with the wire codec and inserts it into slot.
func (b *Buffer) InsertValue(slot ParamType, v any) error {
	data, err := wire.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	return b.Insert(slot, data)
}

// Flag links slot without a payload. Used for query batches where the
// device fills in the current value.
func (b *Buffer) Flag(slot ParamType) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	b.link(slot)
	return nil
}

// link splices slot into the ordered list. Already linked slots are left
// where they are.
func (b *Buffer) link(slot ParamType) {
	current := b.first
	switch {
	case slot == current:
		// already the head
	case slot < current:
		b.next[slot] = current
		b.first = slot
	default:
		for slot > b.next[current] {
			current = b.next[current]
		}
		if slot != b.next[current] {
			b.next[slot] = b.next[current]
			b.next[current] = slot
		}
	}
}

// Empty reports whether no slot is populated.
func (b *Buffer) Empty() bool {
	return b.first == ParamMax
}

// Len returns the number of populated slots.
func (b *Buffer) Len() int {
	n := 0
	for p := b.first; p != ParamMax; p = b.next[p] {
		n++
	}
	return n
}

// Contains reports whether slot is linked.
func (b *Buffer) Contains(slot ParamType) bool {
	for p := b.first; p != ParamMax && p <= slot; p = b.next[p] {
		if p == slot {
			return true
		}
	}
	return false
}

// Payload returns a copy of the payload stored in slot, or nil when the
// slot is not linked.
func (b *Buffer) Payload(slot ParamType) []byte {
	if !slot.Valid() || !b.Contains(slot) {
		return nil
	}
	out := make([]byte, b.size[slot])
	copy(out, b.entries[slot][:b.size[slot]])
	return out
}

// Decode unmarshals the payload stored in slot into v.
func (b *Buffer) Decode(slot ParamType, v any) error {
	data := b.Payload(slot)
	if data == nil {
		return fmt.Errorf("%w: %s not populated", ErrInvalidSlot, slot)
	}
	return wire.Unmarshal(data, v)
}

// All yields populated slots and their payloads in ascending slot order.
// The payload slices alias the buffer and are only valid until the next
// mutation.
func (b *Buffer) All() iter.Seq2[ParamType, []byte] {
	return func(yield func(ParamType, []byte) bool) {
		for p := b.first; p != ParamMax; p = b.next[p] {
			if !yield(p, b.entries[p][:b.size[p]]) {
				return
			}
		}
	}
}

// Slots returns the populated slots in list order.
func (b *Buffer) Slots() []ParamType {
	var out []ParamType
	for p := range b.All() {
		out = append(out, p)
	}
	return out
}
