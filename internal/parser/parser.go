package parser

import (
	"regexp"
	"strings"

	"loglens/internal/model"
)

// linePattern captures date, time, bracketed level, and the trailing message.
// The match is all-or-nothing: a line either yields all four fields or none.
var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2}) \[(\w+)\] (.+)$`)

// LineParser converts raw log lines into structured LogEntry values.
type LineParser struct{}

// New returns a parser for the fixed `DATE TIME [LEVEL] message` format.
func New() *LineParser { return &LineParser{} }

// Parse attempts to extract the four fields from one raw line. The line is
// whitespace-trimmed before matching. The boolean is false when the line does
// not fit the format; no partial extraction is performed. Date and time are
// captured as text without semantic validation.
func (p *LineParser) Parse(raw string) (model.LogEntry, bool) {
	matches := linePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return model.LogEntry{}, false
	}

	return model.LogEntry{
		Date:    matches[1],
		Time:    matches[2],
		Level:   matches[3],
		Message: matches[4],
	}, true
}
