package report

import (
	"sort"

	"loglens/internal/aggregator"
	"loglens/internal/model"
)

const (
	// maxShownErrors caps how many error records appear in the summary.
	maxShownErrors = 10
	// messageTruncate bounds the rendered message of each shown error.
	messageTruncate = 80
	// highRateThreshold is the error-rate percentage above which the
	// summary carries a warning.
	highRateThreshold = 5.0
)

// ErrorLine is one rendered entry of the summary's error list.
type ErrorLine struct {
	LineNumber int    `json:"line_number"`
	Level      string `json:"level"`
	Message    string `json:"message"`
}

// LevelCount is one per-level tally in the summary.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// Report is the structured summary of one analysis run.
type Report struct {
	TotalParsed   int          `json:"total_parsed"`
	TotalErrors   int          `json:"total_errors"`
	TopErrors     []ErrorLine  `json:"top_errors"`
	Levels        []LevelCount `json:"levels"`
	ErrorRate     float64      `json:"error_rate"`
	HighErrorRate bool         `json:"high_error_rate"`
}

// Build produces the summary for an analysis result: the first ten error
// records in input order, per-level counts sorted by level name, and the
// error rate (percentage of parsed lines at level ERROR, 0 when nothing
// parsed) with a warning flag above the 5% threshold.
func Build(res *aggregator.Result) Report {
	r := Report{
		TotalParsed: res.TotalParsed,
		TotalErrors: len(res.Errors),
	}

	shown := res.Errors
	if len(shown) > maxShownErrors {
		shown = shown[:maxShownErrors]
	}
	for _, rec := range shown {
		r.TopErrors = append(r.TopErrors, renderError(rec))
	}

	for level, count := range res.LevelCounts {
		r.Levels = append(r.Levels, LevelCount{Level: level, Count: count})
	}
	sort.Slice(r.Levels, func(i, j int) bool {
		return r.Levels[i].Level < r.Levels[j].Level
	})

	if res.TotalParsed > 0 {
		r.ErrorRate = float64(res.LevelCounts["ERROR"]) / float64(res.TotalParsed) * 100
	}
	r.HighErrorRate = r.ErrorRate > highRateThreshold

	return r
}

func renderError(rec model.ErrorRecord) ErrorLine {
	msg := rec.Entry.Message
	if len(msg) > messageTruncate {
		msg = msg[:messageTruncate]
	}
	return ErrorLine{
		LineNumber: rec.LineNumber,
		Level:      rec.Entry.Level,
		Message:    msg,
	}
}
