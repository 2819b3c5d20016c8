package log

import (
	"time"
)

// Event represents one entry in a parameter session trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the parameter session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Cycle is the update cycle sequence number within the session.
	Cycle uint64 `cbor:"4,keyasint,omitempty"`

	// Device names the capability profile in use.
	Device string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Attribute *AttributeEvent `cbor:"10,keyasint,omitempty"`
	Commit    *CommitEvent    `cbor:"11,keyasint,omitempty"`
	Lifecycle *LifecycleEvent `cbor:"12,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryAttribute indicates a per-attribute setter outcome.
	CategoryAttribute Category = 0
	// CategoryCommit indicates a batch handed to the device.
	CategoryCommit Category = 1
	// CategoryLifecycle indicates a session state change.
	CategoryLifecycle Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAttribute:
		return "ATTRIBUTE"
	case CategoryCommit:
		return "COMMIT"
	case CategoryLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as printed by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryAttribute; c <= CategoryLifecycle; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// AttributeEvent captures what a setter did with a requested value.
type AttributeEvent struct {
	// Key is the attribute key.
	Key string `cbor:"1,keyasint"`

	// Value is the requested value (empty for removals).
	Value string `cbor:"2,keyasint,omitempty"`

	// Outcome is the setter decision.
	Outcome Outcome `cbor:"3,keyasint"`

	// Slot names the batch slot written, if any.
	Slot string `cbor:"4,keyasint,omitempty"`

	// Restart is set when the change requires a pipeline restart.
	Restart bool `cbor:"5,keyasint,omitempty"`

	// Reason explains a rejection or a forced value.
	Reason string `cbor:"6,keyasint,omitempty"`
}

// Outcome is the decision a setter made for one attribute.
type Outcome uint8

const (
	// OutcomeStaged indicates the value was accepted and staged.
	OutcomeStaged Outcome = 0
	// OutcomeNoop indicates the value equals the committed one.
	OutcomeNoop Outcome = 1
	// OutcomeRejected indicates the value failed validation.
	OutcomeRejected Outcome = 2
	// OutcomeRemoved indicates a passthrough key was staged for removal.
	OutcomeRemoved Outcome = 3
	// OutcomeForced indicates a different value than requested was staged.
	OutcomeForced Outcome = 4
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeStaged:
		return "STAGED"
	case OutcomeNoop:
		return "NOOP"
	case OutcomeRejected:
		return "REJECTED"
	case OutcomeRemoved:
		return "REMOVED"
	case OutcomeForced:
		return "FORCED"
	default:
		return "UNKNOWN"
	}
}

// ParseOutcome parses an outcome name as printed by String.
func ParseOutcome(s string) (Outcome, bool) {
	for o := OutcomeStaged; o <= OutcomeForced; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}

// CommitEvent captures one batch exchanged with the device.
type CommitEvent struct {
	// Kind distinguishes update, one-shot and query batches.
	Kind CommitKind `cbor:"1,keyasint"`

	// Slots lists the batch slots in list order.
	Slots []string `cbor:"2,keyasint,omitempty"`

	// Changes is the number of staged string changes.
	Changes int `cbor:"3,keyasint,omitempty"`

	// Success reports whether the device accepted the batch.
	Success bool `cbor:"4,keyasint"`

	// Error is the device error message on failure.
	Error string `cbor:"5,keyasint,omitempty"`

	// Duration is the time spent in the device call.
	// Stored as nanoseconds.
	Duration *time.Duration `cbor:"6,keyasint,omitempty"`

	// NeedRestart is the restart flag of the cycle being committed.
	NeedRestart bool `cbor:"7,keyasint,omitempty"`
}

// CommitKind indicates what kind of batch was committed.
type CommitKind uint8

const (
	// CommitKindUpdate is the batch of an update cycle.
	CommitKindUpdate CommitKind = 0
	// CommitKindOneShot is a single-slot batch committed immediately.
	CommitKindOneShot CommitKind = 1
	// CommitKindQuery is a get batch read back from the device.
	CommitKindQuery CommitKind = 2
)

// String returns the commit kind name.
func (k CommitKind) String() string {
	switch k {
	case CommitKindUpdate:
		return "UPDATE"
	case CommitKindOneShot:
		return "ONESHOT"
	case CommitKindQuery:
		return "QUERY"
	default:
		return "UNKNOWN"
	}
}

// LifecycleEvent captures session open and close.
type LifecycleEvent struct {
	// State is the new session state ("open", "closed").
	State string `cbor:"1,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"2,keyasint,omitempty"`
}
