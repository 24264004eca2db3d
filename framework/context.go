package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test or group within a test run.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	deferred    []func()
	group       bool
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run starts a test run. The action receives the root Context, which has an empty TestID and
// is not itself reported as a test; it is expected to call Group and Run. If the root action
// fails or panics, its errors go to Results.Errors.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	env := &environment{
		filter:     filter,
		testLogger: testLoggerOrNull(testLogger),
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.recovered(r)
		}
		c.runDeferred()
		c.record(time.Since(started))
	}()

	action(c)
}

// recovered turns a panic into a failure. FailNow and Skip panic with the Context itself, in
// which case the errors (if any) have already been recorded.
func (c *Context) recovered(r interface{}) {
	if c.skipped {
		return
	}
	c.failed = true
	var addError error
	if _, ok := r.(*Context); ok {
		if len(c.errors) == 0 {
			addError = errors.New("test failed with no failure message")
		}
	} else {
		addError = fmt.Errorf("unexpected panic in %s: %+v\n%s", c.kind(), r, string(debug.Stack()))
	}
	if addError != nil {
		c.errors = append(c.errors, addError)
		c.env.testLogger.TestError(c.id, addError)
	}
}

func (c *Context) record(duration time.Duration) {
	switch {
	case len(c.id.Path) == 0:
		if c.failed {
			c.env.results.Errors = append(c.env.results.Errors, c.errors...)
		}
	case c.group && !c.failed:
		// a group is only reported when its own code failed
	default:
		result := TestResult{
			TestID:   c.id,
			Errors:   c.errors,
			Skipped:  c.skipped,
			Duration: duration,
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}
}

func (c *Context) kind() string {
	switch {
	case len(c.id.Path) == 0:
		return "test run"
	case c.group:
		return "test group"
	default:
		return "test"
	}
}

func (c *Context) runDeferred() {
	for i := len(c.deferred) - 1; i >= 0; i-- {
		c.deferred[i]()
	}
	c.deferred = nil
}

func (c *Context) child(name string) *Context {
	path := append(append([]string(nil), c.id.Path...), name)
	return &Context{
		id:  TestID{Path: path},
		env: c.env,
	}
}

// ID returns the identifier of this test.
func (c *Context) ID() TestID {
	return c.id
}

// Group runs a group of tests. Groups are never excluded by the filter, since the filter is
// meant to select individual tests; a group whose tests are all filtered out simply reports
// nothing. Functions passed to the group's Defer run when the group ends. A failure in the
// group's own code (outside of any Run) is reported as a failure of the group.
func (c *Context) Group(name string, action func(*Context)) {
	g := c.child(name)
	g.group = true
	c.env.testLogger.TestStarted(g.id)
	g.run(action)
}

// Run runs a single test, unless the filter excludes it.
func (c *Context) Run(name string, action func(*Context)) {
	c1 := c.child(name)
	id := c1.id

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a failure without stopping the test. It is called by assert functions.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the test immediately. It is called by require functions.
func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

// Failed reports whether the test has recorded any failure so far.
func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to run when the test ends, whether it passed or not. Deferred
// functions run in reverse order.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
