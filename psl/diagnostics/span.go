// Package diagnostics provides error and warning handling for PSL parsing and validation.
package diagnostics

import "strings"

// FileID represents the stable identifier for a PSL file.
type FileID uint32

const (
	// FileIDZero represents an empty or default file ID.
	FileIDZero FileID = 0
)

// Span represents a location in a datamodel's text representation.
// Start and End are byte offsets, End is exclusive.
type Span struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	FileID FileID `json:"file_id"`
}

// NewSpan creates a new span with the given parameters.
func NewSpan(start, end int, fileID FileID) Span {
	return Span{
		Start:  start,
		End:    end,
		FileID: fileID,
	}
}

// EmptySpan creates a new empty span.
func EmptySpan() Span {
	return Span{}
}

// Contains checks if the given position is inside the span (boundaries included).
func (s Span) Contains(position int) bool {
	return position >= s.Start && position <= s.End
}

// Overlaps checks if the given span overlaps with the current span.
func (s Span) Overlaps(other Span) bool {
	return s.FileID == other.FileID && (s.Contains(other.Start) || s.Contains(other.End))
}

// Less orders spans by file, then start offset, then end offset.
func (s Span) Less(other Span) bool {
	if s.FileID != other.FileID {
		return s.FileID < other.FileID
	}
	if s.Start != other.Start {
		return s.Start < other.Start
	}
	return s.End < other.End
}

// LineColumn is a 1-based line/column pair.
type LineColumn struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position resolves the start and end of the span against the source text.
func (s Span) Position(text string) (start, end LineColumn) {
	return offsetToLineColumn(text, s.Start), offsetToLineColumn(text, s.End)
}

func offsetToLineColumn(text string, offset int) LineColumn {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - (strings.LastIndex(before, "\n") + 1) + 1
	return LineColumn{Line: line, Column: col}
}
