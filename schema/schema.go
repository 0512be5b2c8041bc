// Package schema has models and constants shared by all parts of folio.
package schema

import "time"

// LineRecord is one row of the line-level source: a single line of code
// as it stood in a given commit.
type LineRecord struct {
	Commit   string    `json:"commit"`   // Commit identifier
	File     string    `json:"file"`     // Path of the file containing the line
	Line     int       `json:"line"`     // Line number, starting at 1
	Depth    int       `json:"depth"`    // Nesting depth, starting at 0
	Length   int       `json:"length"`   // Line length in characters
	Date     time.Time `json:"date"`     // Authored date at midnight in the record's zone
	Time     string    `json:"time"`     // Authored time of day as written in the source
	Timezone string    `json:"timezone"` // Zone offset as written in the source, e.g. -07:00
	Datetime time.Time `json:"datetime"` // Zone-aware authored timestamp
	Author   string    `json:"author"`
	Type     string    `json:"type"` // Language or type tag
}

// CommitSummary is the per-commit aggregate of LineRecords.
// It carries no reference to its lines; see agg.Index.Lines.
type CommitSummary struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Timezone   string    `json:"timezone"`
	Datetime   time.Time `json:"datetime"`
	HourFrac   float64   `json:"hourFrac"`   // Hours plus minutes/60 in the datetime's own zone
	TotalLines int       `json:"totalLines"` // Number of constituent LineRecords
}

// ProjectRecord is one entry of the project list.
type ProjectRecord struct {
	Title       string         `json:"title"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Year        string         `json:"year"`            // Always compared as a string
	Extra       map[string]any `json:"extra,omitempty"` // Any other metadata fields of the source object
}

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a brush selection given by two opposite corners.
type Rect struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Slice is one category of a breakdown: a pie wedge and its legend entry.
type Slice struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	Selected   bool    `json:"selected"`
}

// TypeCount is the number of lines of one type inside a file.
type TypeCount struct {
	Type  string `json:"type"`
	Lines int    `json:"lines"`
}

// FileBar is one file of the file-breakdown view.
type FileBar struct {
	Name  string      `json:"name"`
	Lines int         `json:"lines"`
	Types []TypeCount `json:"types"`
}

// CommitStats are the summary tiles of the meta page.
type CommitStats struct {
	TotalLOC         int    `json:"totalLoc"`
	Commits          int    `json:"commits"`
	Files            int    `json:"files"`
	LongestFile      string `json:"longestFile"`      // Empty when there are no files
	LongestFileLines int    `json:"longestFileLines"` // Highest line number seen in LongestFile
	AvgFileLength    *int   `json:"avgFileLength"`    // Nil when there are no files
	MaxDepth         int    `json:"maxDepth"`
	MostActivePeriod string `json:"mostActivePeriod"` // Empty when there are no lines
}

// Step is one narrative block of the scrollytelling view.
type Step struct {
	Index    int       `json:"index"`
	CommitID string    `json:"commitId"`
	URL      string    `json:"url"`
	Datetime time.Time `json:"datetime"`
	Text     string    `json:"text"`
}

// Tooltip is the hover detail of a single commit.
type Tooltip struct {
	Link   string `json:"link"`
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Author string `json:"author"`
	Lines  int    `json:"lines"`
}
