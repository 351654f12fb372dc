package aggregator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"loglens/internal/model"
	"loglens/internal/parser"
)

var (
	// ErrSourceUnavailable reports that the input source could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrIOFailure reports a read error while iterating the source.
	ErrIOFailure = errors.New("i/o failure")
)

const (
	// memoryExcerptLen bounds the message excerpt in memory notifications.
	memoryExcerptLen = 100
	// diagExcerptLen bounds the excerpt in parse-mismatch diagnostics.
	diagExcerptLen = 50
	// maxLineLen is the scan buffer cap; the format puts no bound on the
	// message, so lines well past bufio's 64KB default must still parse.
	maxLineLen = 1024 * 1024
)

// Notifier receives an immediate notification for each line whose message
// mentions memory. The excerpt is the first 100 bytes of the message. The
// notification is fire-and-forget; nothing about it is retained.
type Notifier func(lineNumber int, excerpt string)

// Result holds the accumulated outcome of one full pass over a source.
// sum(LevelCounts) always equals TotalParsed.
type Result struct {
	TotalParsed int                 `json:"total_parsed"`
	LevelCounts map[string]int      `json:"level_counts"`
	Errors      []model.ErrorRecord `json:"errors"`
}

// Aggregator performs a single-pass scan of a log source: it counts entries
// per level, retains error-classified lines, and fires memory notifications.
// Each Analyze call accumulates into a fresh Result; the Aggregator itself
// holds only configuration, so one instance can be reused across runs.
type Aggregator struct {
	parser *parser.LineParser
	notify Notifier
	debug  bool
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNotifier sets the callback invoked for memory-related lines.
func WithNotifier(n Notifier) Option {
	return func(a *Aggregator) { a.notify = n }
}

// WithDebug enables a diagnostic log line for every unparseable input line.
func WithDebug(debug bool) Option {
	return func(a *Aggregator) { a.debug = debug }
}

// New creates an Aggregator. Without options, memory notifications are
// discarded and parse mismatches are skipped silently.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		parser: parser.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeFile opens the file at path and analyzes it. An open failure is
// reported as ErrSourceUnavailable with no partial results. The file is
// closed on every exit path.
func (a *Aggregator) AnalyzeFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	return a.Analyze(f)
}

// Analyze scans the reader line by line and accumulates a Result. Lines that
// do not match the log format are skipped. A read error discards everything
// accumulated so far and is reported as ErrIOFailure: the run is failed, not
// partially successful.
func (a *Aggregator) Analyze(r io.Reader) (*Result, error) {
	res := &Result{
		LevelCounts: make(map[string]int),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		entry, ok := a.parser.Parse(line)
		if !ok {
			if a.debug {
				log.Printf("couldn't parse line %d: %s", lineNum, truncate(line, diagExcerptLen))
			}
			continue
		}

		res.TotalParsed++
		res.LevelCounts[entry.Level]++

		// Two independent classifications: a line can trigger both, either,
		// or neither.
		if isErrorLike(entry) {
			res.Errors = append(res.Errors, model.ErrorRecord{
				LineNumber: lineNum,
				Entry:      entry,
			})
		}
		if a.notify != nil && mentionsMemory(entry) {
			a.notify(lineNum, truncate(entry.Message, memoryExcerptLen))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return res, nil
}

// isErrorLike reports whether the entry should be retained as an error:
// the message contains "error" case-insensitively, or the level is ERROR.
func isErrorLike(entry model.LogEntry) bool {
	return strings.Contains(strings.ToLower(entry.Message), "error") || entry.Level == "ERROR"
}

// mentionsMemory reports whether the message contains "memory",
// case-insensitively.
func mentionsMemory(entry model.LogEntry) bool {
	return strings.Contains(strings.ToLower(entry.Message), "memory")
}

// truncate returns at most n bytes of s.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
