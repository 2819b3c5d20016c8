package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/camparam/camparam-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{"timestamp", "session_id", "cycle", "device", "category", "key", "value", "outcome", "slots", "success", "error"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func csvRow(event log.Event) []string {
	var key, value, outcome, slots, success, errMsg string
	switch {
	case event.Attribute != nil:
		key = event.Attribute.Key
		value = event.Attribute.Value
		outcome = event.Attribute.Outcome.String()
		slots = event.Attribute.Slot
		errMsg = event.Attribute.Reason
	case event.Commit != nil:
		key = event.Commit.Kind.String()
		slots = strings.Join(event.Commit.Slots, " ")
		success = strconv.FormatBool(event.Commit.Success)
		errMsg = event.Commit.Error
	case event.Lifecycle != nil:
		value = event.Lifecycle.State
		errMsg = event.Lifecycle.Reason
	}

	return []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.SessionID,
		strconv.FormatUint(event.Cycle, 10),
		event.Device,
		event.Category.String(),
		key,
		value,
		outcome,
		slots,
		success,
		errMsg,
	}
}
