package framework

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult

	// Errors are failures of the run itself, outside of any test or group.
	Errors []error
}

type TestResult struct {
	TestID   TestID
	Errors   []error
	Skipped  bool
	Duration time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0 && len(r.Errors) == 0
}

// Passed returns the number of tests that ran to completion without failing.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped && len(t.Errors) == 0 {
			n++
		}
	}
	return n
}

// Find returns the result for the test with the given path, if it ran.
func (r Results) Find(path ...string) (TestResult, bool) {
	want := TestID{Path: path}.String()
	for _, t := range r.Tests {
		if t.TestID.String() == want {
			return t, true
		}
	}
	return TestResult{}, false
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestFailure is one error of a test run, labeled with the test it belongs to. The ID is empty
// for errors outside of any test.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	if len(f.ID.Path) == 0 {
		return f.Err.Error()
	}
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}

// AllErrors returns every error of the run, in order: errors outside of any test first, then
// the errors of each failed test.
func (r Results) AllErrors() []TestFailure {
	var ret []TestFailure
	for _, e := range r.Errors {
		ret = append(ret, TestFailure{Err: e})
	}
	for _, f := range r.Failures {
		for _, e := range f.Errors {
			ret = append(ret, TestFailure{ID: f.TestID, Err: e})
		}
	}
	return ret
}

// PrintResults writes a summary of the test run, followed by every failure and its errors.
func PrintResults(out io.Writer, results Results) {
	fmt.Fprintf(out, "Ran %d tests: %d passed, %d failed\n",
		len(results.Tests), results.Passed(), len(results.Failures))
	if len(results.Errors) > 0 {
		fmt.Fprintln(out, "Test run failed:")
		printErrors(out, results.Errors)
	}
	if len(results.Failures) > 0 {
		fmt.Fprintln(out, "Failed tests:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  %s\n", f.TestID)
			printErrors(out, f.Errors)
		}
	}
}

func printErrors(out io.Writer, errs []error) {
	for _, e := range errs {
		for _, line := range strings.Split(e.Error(), "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
}
