package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"loglens/internal/report"
)

// Renderer writes an analysis report to an output stream.
type Renderer interface {
	Render(r report.Report) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleAlert   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
)

// TextRenderer prints the report to the terminal with severity-based colors.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (t *TextRenderer) Render(r report.Report) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(t.w, format+"\n", args...)
		}
	}

	p("%s", styleHeading.Render(fmt.Sprintf("Found %d errors:", r.TotalErrors)))
	for _, e := range r.TopErrors {
		p("  Line %d: %s %s", e.LineNumber, styleLevelTag(e.Level), e.Message)
	}

	p("")
	p("%s", styleHeading.Render("Stats:"))
	for _, lc := range r.Levels {
		p("  %s: %d", styleLevelTag(lc.Level), lc.Count)
	}

	p("")
	p("Error rate: %.1f%%", r.ErrorRate)
	if r.HighErrorRate {
		p("%s", styleAlert.Render("WARNING: high error rate detected!"))
	}

	return err
}

func styleLevelTag(level string) string {
	tag := "[" + level + "]"
	switch level {
	case "ERROR", "FATAL":
		return styleError.Render(tag)
	case "WARN":
		return styleWarn.Render(tag)
	default:
		return styleDim.Render(tag)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the report as a single JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes indented JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (j *JSONRenderer) Render(r report.Report) error {
	return j.enc.Encode(r)
}
