package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/camparam/camparam-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsByOutcome  map[log.Outcome]int
	RejectedKeys     map[string]int
	Sessions         map[string]*SessionStats
	FailedCommits    int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single parameter session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Device    string
	Cycles    uint64
	Commits   int
	Restarts  int
}

// collectStats reads every event from r.
func collectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsByOutcome:  make(map[log.Outcome]int),
		RejectedKeys:     make(map[string]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		session, ok := stats.Sessions[event.SessionID]
		if !ok {
			session = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = session
		}
		session.Events++
		if event.Timestamp.After(session.LastSeen) {
			session.LastSeen = event.Timestamp
		}
		if event.Device != "" && session.Device == "" {
			session.Device = event.Device
		}
		if event.Cycle > session.Cycles {
			session.Cycles = event.Cycle
		}

		switch {
		case event.Attribute != nil:
			stats.EventsByOutcome[event.Attribute.Outcome]++
			if event.Attribute.Outcome == log.OutcomeRejected {
				stats.RejectedKeys[event.Attribute.Key]++
			}
		case event.Commit != nil && event.Commit.Kind == log.CommitKindUpdate:
			session.Commits++
			if !event.Commit.Success {
				stats.FailedCommits++
			} else if event.Commit.NeedRestart {
				session.Restarts++
			}
		case event.Commit != nil && !event.Commit.Success:
			stats.FailedCommits++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Camera Parameter Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryAttribute, log.CategoryCommit, log.CategoryLifecycle} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Attributes by Outcome:")
	for _, o := range []log.Outcome{log.OutcomeStaged, log.OutcomeNoop, log.OutcomeRejected, log.OutcomeRemoved, log.OutcomeForced} {
		if count := stats.EventsByOutcome[o]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", o.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.RejectedKeys) > 0 {
		keys := make([]string, 0, len(stats.RejectedKeys))
		for k := range stats.RejectedKeys {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if stats.RejectedKeys[keys[i]] != stats.RejectedKeys[keys[j]] {
				return stats.RejectedKeys[keys[i]] > stats.RejectedKeys[keys[j]]
			}
			return keys[i] < keys[j]
		})
		fmt.Fprintln(w, "Rejected Keys:")
		for _, k := range keys {
			fmt.Fprintf(w, "  %-28s %d\n", k+":", stats.RejectedKeys[k])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d cycles, duration %s\n",
				shortenSessionID(s.id), s.stats.Events, s.stats.Cycles, duration)
			if s.stats.Device != "" {
				fmt.Fprintf(w, "           Device: %s\n", s.stats.Device)
			}
			fmt.Fprintf(w, "           Commits: %d (restarts: %d)\n", s.stats.Commits, s.stats.Restarts)
		}
	}

	if stats.FailedCommits > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed Commits: %d\n", stats.FailedCommits)
	}
}
