// Package commands implements the camparam-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/camparam/camparam-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category *log.Category
	Outcome  *log.Outcome
	Key      string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] #cycle CATEGORY label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)

	var label string
	switch {
	case event.Attribute != nil:
		label = event.Attribute.Outcome.String()
	case event.Commit != nil:
		label = event.Commit.Kind.String()
	case event.Lifecycle != nil:
		label = event.Lifecycle.State
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] #%d %s %s\n", ts, session, event.Cycle, event.Category.String(), label)

	switch {
	case event.Attribute != nil:
		formatAttributeDetails(w, event.Attribute)
	case event.Commit != nil:
		formatCommitDetails(w, event.Commit)
	case event.Lifecycle != nil:
		if event.Device != "" {
			fmt.Fprintf(w, "  Device: %s\n", event.Device)
		}
		if event.Lifecycle.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", event.Lifecycle.Reason)
		}
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatAttributeDetails(w io.Writer, a *log.AttributeEvent) {
	fmt.Fprintf(w, "  %s = %q\n", a.Key, a.Value)
	if a.Slot != "" {
		fmt.Fprintf(w, "  Slot: %s\n", a.Slot)
	}
	if a.Restart {
		fmt.Fprintln(w, "  Restart: yes")
	}
	if a.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", a.Reason)
	}
}

func formatCommitDetails(w io.Writer, c *log.CommitEvent) {
	status := "ok"
	if !c.Success {
		status = "failed"
	}
	fmt.Fprintf(w, "  Status: %s\n", status)
	if len(c.Slots) > 0 {
		fmt.Fprintf(w, "  Slots: %s\n", strings.Join(c.Slots, ","))
	}
	if c.Changes > 0 {
		fmt.Fprintf(w, "  Changes: %d\n", c.Changes)
	}
	if c.Duration != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*c.Duration))
	}
	if c.NeedRestart {
		fmt.Fprintln(w, "  Restart: yes")
	}
	if c.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", c.Error)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be attribute, commit, or lifecycle)", s)
	}
	return c, nil
}

// ParseOutcomeFlag parses an outcome string from command-line flag (case-insensitive).
func ParseOutcomeFlag(s string) (log.Outcome, error) {
	o, ok := log.ParseOutcome(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid outcome: %s (must be staged, noop, rejected, removed, or forced)", s)
	}
	return o, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Category: filter.Category,
		Outcome:  filter.Outcome,
		Key:      filter.Key,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
