// Package load parses the line-level CSV source and the JSON project list into typed records.
package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/folio/schema"
)

// Required columns of the line source. Column order in the file is free.
var requiredColumns = []string{
	"commit", "file", "line", "depth", "length",
	"date", "timezone", "datetime", "author", "type",
}

// ErrEmptySource is returned when a source has no header row.
var ErrEmptySource = errors.New("source is empty")

// datetimeLayouts are tried in order when parsing the datetime column.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// LinesFromFile reads and parses the CSV line source at path.
func LinesFromFile(path string) ([]schema.LineRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open line source %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LinesFromReader(f)
}

// LinesFromReader parses CSV line records from r. Rows keep the order of the source.
func LinesFromReader(r io.Reader) ([]schema.LineRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	var lines []schema.LineRecord
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rec, err := parseRow(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		lines = append(lines, rec)
	}
	return lines, nil
}

// parseRow converts one CSV row into a LineRecord.
func parseRow(fields []string, cols map[string]int) (schema.LineRecord, error) {
	get := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	var rec schema.LineRecord
	var err error

	rec.Commit = get("commit")
	rec.File = get("file")
	rec.Author = get("author")
	rec.Type = get("type")
	rec.Time = get("time")
	rec.Timezone = get("timezone")

	if rec.Line, err = parseInt("line", get("line"), 1); err != nil {
		return rec, err
	}
	if rec.Depth, err = parseInt("depth", get("depth"), 0); err != nil {
		return rec, err
	}
	if rec.Length, err = parseInt("length", get("length"), 0); err != nil {
		return rec, err
	}

	// date is midnight in the record's own zone
	if rec.Date, err = time.Parse("2006-01-02T15:04Z07:00", get("date")+"T00:00"+zoneSuffix(rec.Timezone)); err != nil {
		return rec, fmt.Errorf("invalid date %q: %w", get("date"), err)
	}
	if rec.Datetime, err = ParseDatetime(get("datetime")); err != nil {
		return rec, err
	}
	return rec, nil
}

// ParseDatetime parses a zone-aware timestamp as found in the datetime column.
func ParseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

func parseInt(name, value string, minimum int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if n < minimum {
		return 0, fmt.Errorf("%s must be at least %d, got %d", name, minimum, n)
	}
	return n, nil
}

// zoneSuffix normalizes an empty or "Z" offset so it can be appended to a local time.
func zoneSuffix(tz string) string {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return "Z"
	}
	return tz
}
