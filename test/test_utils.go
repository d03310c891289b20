// Package test holds helpers shared by the package tests: per-case timers,
// a suite summary and a performance assertion for the pure engines.
package test

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// TestTimer measures how long a test case took.
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop returns the elapsed time since the timer was created.
func (t *TestTimer) Stop() time.Duration {
	return time.Since(t.start)
}

// PerformanceAssertion fails t when duration exceeds maxDuration.
func PerformanceAssertion(t *testing.T, name string, duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("%s took %v, expected less than %v", name, duration, maxDuration)
	}
}

// TestResult is the outcome of one timed case.
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult collects the results of a group of cases.
type TestSuiteResult struct {
	SuiteName   string
	TotalTests  int
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

func (s *TestSuiteResult) AddResult(r TestResult) {
	s.Results = append(s.Results, r)
	s.TotalTests++
	s.TotalTime += r.Duration
	if r.Passed {
		s.PassedTests++
	} else {
		s.FailedTests++
	}
}

// Run runs fn as subtest name, records it in the suite and asserts it
// finished within budget.
func (s *TestSuiteResult) Run(t *testing.T, name string, budget time.Duration, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		timer := NewTestTimer(name)
		defer func() {
			d := timer.Stop()
			s.AddResult(TestResult{Name: name, Duration: d, Passed: !t.Failed()})
			PerformanceAssertion(t, name, d, budget)
		}()
		fn(t)
	})
}

// Summary renders the suite results, one line per case.
func (s *TestSuiteResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%d passed in %v\n", s.SuiteName, s.PassedTests, s.TotalTests, s.TotalTime)
	for _, r := range s.Results {
		status := "ok"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %-4s %s (%v)\n", status, r.Name, r.Duration)
	}
	return b.String()
}

// Log writes the summary to t's log.
func (s *TestSuiteResult) Log(t *testing.T) {
	t.Helper()
	t.Log(s.Summary())
}
