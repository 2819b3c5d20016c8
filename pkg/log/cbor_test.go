package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeAttributeEvent(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	event := Event{
		Timestamp: ts,
		SessionID: "5f0c1f43-3c3e-4d5e-9d47-0d7f5f0e6a11",
		Category:  CategoryAttribute,
		Cycle:     3,
		Device:    "default",
		Attribute: &AttributeEvent{
			Key:     "preview-size",
			Value:   "1280x720",
			Outcome: OutcomeRejected,
			Reason:  "size not supported",
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.True(t, decoded.Timestamp.Equal(ts), "nanosecond timestamp preserved")
	assert.Equal(t, event.SessionID, decoded.SessionID)
	assert.Equal(t, uint64(3), decoded.Cycle)
	require.NotNil(t, decoded.Attribute)
	assert.Equal(t, *event.Attribute, *decoded.Attribute)
	assert.Nil(t, decoded.Commit)
	assert.Nil(t, decoded.Lifecycle)
}

func TestEncodeDecodeCommitEvent(t *testing.T) {
	d := 1500 * time.Microsecond
	event := Event{
		Timestamp: time.Now(),
		SessionID: "s",
		Category:  CategoryCommit,
		Commit: &CommitEvent{
			Kind:        CommitKindUpdate,
			Slots:       []string{"ZOOM", "BRIGHTNESS"},
			Changes:     4,
			Success:     false,
			Error:       "device rejected batch",
			Duration:    &d,
			NeedRestart: true,
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)
	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	require.NotNil(t, decoded.Commit)
	assert.Equal(t, event.Commit.Slots, decoded.Commit.Slots)
	assert.False(t, decoded.Commit.Success)
	require.NotNil(t, decoded.Commit.Duration)
	assert.Equal(t, d, *decoded.Commit.Duration)
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Unix(0, 42).UTC(),
		SessionID: "s",
		Category:  CategoryLifecycle,
		Lifecycle: &LifecycleEvent{State: "open"},
	}
	a, err := EncodeEvent(event)
	require.NoError(t, err)
	b, err := EncodeEvent(event)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeEventInvalid(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, enc.Encode(Event{SessionID: "s", Cycle: i}))
	}

	dec := NewDecoder(&buf)
	for i := uint64(1); i <= 3; i++ {
		var e Event
		require.NoError(t, dec.Decode(&e))
		if e.Cycle != i {
			t.Errorf("expected cycle %d, got %d", i, e.Cycle)
		}
	}
}
