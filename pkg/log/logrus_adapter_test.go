package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterAttributeEvent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	NewLogrusAdapter(logger).Log(Event{
		SessionID: "s-1",
		Category:  CategoryAttribute,
		Cycle:     4,
		Attribute: &AttributeEvent{Key: "zoom", Value: "3", Outcome: OutcomeStaged, Slot: "ZOOM"},
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "camparam", entry.Message)
	assert.Equal(t, "s-1", entry.Data["session"])
	assert.Equal(t, "zoom", entry.Data["key"])
	assert.Equal(t, "STAGED", entry.Data["outcome"])
	assert.Equal(t, "ZOOM", entry.Data["slot"])
	assert.Equal(t, uint64(4), entry.Data["cycle"])
}

func TestLogrusAdapterWarnsOnFailedCommit(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	NewLogrusAdapter(logger).Log(Event{
		SessionID: "s",
		Category:  CategoryCommit,
		Commit:    &CommitEvent{Kind: CommitKindUpdate, Slots: []string{"ZOOM"}, Error: "boom"},
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "boom", entry.Data["error"])
	assert.Equal(t, false, entry.Data["success"])
}

func TestLogrusAdapterRespectsLevel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	NewLogrusAdapter(logger).Log(Event{
		SessionID: "s",
		Category:  CategoryLifecycle,
		Lifecycle: &LifecycleEvent{State: "open"},
	})
	assert.Empty(t, hook.AllEntries(), "debug events are filtered at info level")
}

func TestNewLogrusAdapterNilUsesStandardLogger(t *testing.T) {
	a := NewLogrusAdapter(nil)
	assert.Equal(t, logrus.StandardLogger(), a.logger)
}
