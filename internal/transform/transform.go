// Package transform normalizes lists of key/value records: strings are
// trimmed, negative numbers clamped to zero, nil values and nil list elements
// dropped, and each record is stamped with a processing timestamp.
package transform

import (
	"errors"
	"strings"
	"time"
)

const (
	defaultTimeout    = 30
	defaultMaxRetries = 3
)

// Record is one key/value record to normalize.
type Record = map[string]any

// Config holds processing parameters. Zero values are filled with defaults
// by Validate.
type Config struct {
	Timeout    int `json:"timeout"`
	MaxRetries int `json:"max_retries"`
}

// Validate fills unset fields with defaults and rejects negative values.
func (c *Config) Validate() error {
	if c.Timeout < 0 || c.MaxRetries < 0 {
		return errors.New("timeout and max_retries must be non-negative")
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	return nil
}

// Processor normalizes records according to its configuration.
type Processor struct {
	cfg Config
	now func() time.Time
}

// New creates a Processor. The config is validated; defaults are applied.
func New(cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, now: time.Now}, nil
}

// Config returns the effective configuration after defaulting.
func (p *Processor) Config() Config { return p.cfg }

// Process normalizes every record and returns the result. The input records
// are not mutated. An empty input yields an empty, non-nil slice.
func (p *Processor) Process(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		out = append(out, p.processRecord(rec))
	}
	return out
}

// processRecord normalizes one record field by field. Nil values are
// dropped; everything else is normalized by type. A processed_at timestamp
// is added last.
func (p *Processor) processRecord(rec Record) Record {
	out := make(Record, len(rec)+1)

	for key, value := range rec {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			out[key] = strings.TrimSpace(v)
		case int:
			out[key] = clampInt(v)
		case int64:
			out[key] = clampInt64(v)
		case float64:
			out[key] = clampFloat(v)
		case []any:
			out[key] = dropNils(v)
		default:
			out[key] = v
		}
	}

	out["processed_at"] = p.now().Format(time.RFC3339)
	return out
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt64(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// dropNils returns a copy of the list without nil elements.
func dropNils(list []any) []any {
	out := make([]any, 0, len(list))
	for _, item := range list {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}
