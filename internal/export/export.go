package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/yeager/lugn/internal/model"
)

// Format identifies an output encoding for session exports.
type Format string

const (
	// FormatCSV writes a header row plus one row per session.
	FormatCSV Format = "csv"

	// FormatJSON writes an indented JSON array.
	FormatJSON Format = "json"

	// FormatYAML writes a YAML sequence.
	FormatYAML Format = "yaml"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, json, or yaml)", name)
	}
}

// Write encodes sessions to w in the given format.
//
// The session log itself has no opinion on output format; this is the
// one place that does.
//
// Example:
//
//	f, _ := os.Create("sessions.csv")
//	defer f.Close()
//	err := export.Write(f, export.FormatCSV, store.All())
func Write(w io.Writer, format Format, sessions []model.Session) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, sessions)
	case FormatJSON:
		return writeJSON(w, sessions)
	case FormatYAML:
		return writeYAML(w, sessions)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeCSV(w io.Writer, sessions []model.Session) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "type", "duration_seconds", "stress_before", "stress_after"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range sessions {
		record := []string{
			s.Date,
			s.Type,
			strconv.Itoa(s.DurationSeconds),
			strconv.Itoa(s.StressBefore),
			strconv.Itoa(s.StressAfter),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, sessions []model.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sessions); err != nil {
		return fmt.Errorf("encode sessions as json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, sessions []model.Session) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(sessions); err != nil {
		enc.Close()
		return fmt.Errorf("encode sessions as yaml: %w", err)
	}
	return enc.Close()
}
