package report

import (
	"fmt"
	"strings"
	"testing"

	"loglens/internal/aggregator"
	"loglens/internal/model"
)

func TestBuildEmptyResult(t *testing.T) {
	r := Build(&aggregator.Result{LevelCounts: map[string]int{}})

	if r.ErrorRate != 0 {
		t.Errorf("expected rate 0 for empty input, got %f", r.ErrorRate)
	}
	if r.HighErrorRate {
		t.Error("expected no warning for empty input")
	}
	if r.TotalErrors != 0 || len(r.TopErrors) != 0 {
		t.Error("expected no errors for empty input")
	}
}

func TestErrorRateTwoOfTen(t *testing.T) {
	res := &aggregator.Result{
		TotalParsed: 10,
		LevelCounts: map[string]int{"ERROR": 2, "INFO": 8},
	}

	r := Build(res)
	if r.ErrorRate != 20.0 {
		t.Errorf("expected rate 20.0, got %f", r.ErrorRate)
	}
	if !r.HighErrorRate {
		t.Error("expected warning above 5%")
	}
}

func TestRateAtThresholdDoesNotWarn(t *testing.T) {
	res := &aggregator.Result{
		TotalParsed: 100,
		LevelCounts: map[string]int{"ERROR": 5, "INFO": 95},
	}

	r := Build(res)
	if r.ErrorRate != 5.0 {
		t.Errorf("expected rate 5.0, got %f", r.ErrorRate)
	}
	if r.HighErrorRate {
		t.Error("warning fires strictly above 5%, not at it")
	}
}

func TestLevelsSortedAscending(t *testing.T) {
	res := &aggregator.Result{
		TotalParsed: 4,
		LevelCounts: map[string]int{"WARN": 1, "DEBUG": 1, "INFO": 1, "ERROR": 1},
	}

	r := Build(res)
	var got []string
	for _, lc := range r.Levels {
		got = append(got, lc.Level)
	}
	want := "DEBUG,ERROR,INFO,WARN"
	if strings.Join(got, ",") != want {
		t.Errorf("expected order %s, got %s", want, strings.Join(got, ","))
	}
}

func TestTopErrorsCappedAtTen(t *testing.T) {
	res := &aggregator.Result{TotalParsed: 25, LevelCounts: map[string]int{"ERROR": 25}}
	for i := 1; i <= 25; i++ {
		res.Errors = append(res.Errors, model.ErrorRecord{
			LineNumber: i,
			Entry:      model.LogEntry{Level: "ERROR", Message: fmt.Sprintf("failure %d", i)},
		})
	}

	r := Build(res)
	if r.TotalErrors != 25 {
		t.Errorf("expected total 25, got %d", r.TotalErrors)
	}
	if len(r.TopErrors) != 10 {
		t.Fatalf("expected 10 shown errors, got %d", len(r.TopErrors))
	}
	for i, e := range r.TopErrors {
		if e.LineNumber != i+1 {
			t.Errorf("shown errors out of order: position %d has line %d", i, e.LineNumber)
		}
	}
}

func TestErrorMessageTruncatedTo80(t *testing.T) {
	long := strings.Repeat("a", 200)
	res := &aggregator.Result{
		TotalParsed: 1,
		LevelCounts: map[string]int{"ERROR": 1},
		Errors: []model.ErrorRecord{
			{LineNumber: 1, Entry: model.LogEntry{Level: "ERROR", Message: long}},
		},
	}

	r := Build(res)
	if len(r.TopErrors[0].Message) != 80 {
		t.Errorf("expected 80-byte message, got %d bytes", len(r.TopErrors[0].Message))
	}
}
