package model

// LogEntry represents a single parsed log line.
type LogEntry struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Time    string `json:"time"`    // HH:MM:SS
	Level   string `json:"level"`   // INFO, WARN, ERROR, ...
	Message string `json:"message"` // remainder of the line
}

// ErrorRecord is a LogEntry retained because it was classified as an error,
// together with the 1-based number of the line it came from.
type ErrorRecord struct {
	LineNumber int      `json:"line_number"`
	Entry      LogEntry `json:"entry"`
}
