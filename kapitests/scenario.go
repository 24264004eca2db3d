package kapitests

import (
	"sort"
	"strings"

	"github.com/kakao-qa/kapi-contract-tests/kapi"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Step is one request/response pair in a scenario.
type Step struct {
	Name string

	// Request builds the request. It can use values captured by earlier steps.
	Request func(state *ScenarioState) kapi.Request

	// Verify makes assertions about the response.
	Verify func(t *T, resp kapi.Response)

	// Capture lists response fields to save in the scenario state once Verify has passed.
	Capture []Capture
}

// Capture saves the JSON value at Path under Key.
type Capture struct {
	Key  string
	Path []string
}

// ScenarioState holds the values captured by the steps of a scenario so far.
type ScenarioState struct {
	values map[string]ldvalue.Value
}

// Get returns a captured value, or a null value if nothing was captured under that key.
func (s *ScenarioState) Get(key string) ldvalue.Value {
	return s.values[key]
}

// String lists the captured values as key=JSON pairs, sorted by key.
func (s *ScenarioState) String() string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+s.values[k].JSONString())
	}
	return strings.Join(parts, " ")
}

// RunScenario runs the steps in order. If any step fails, the test exits immediately and the
// remaining steps are not run. Whatever was captured is logged when the test ends.
func (t *T) RunScenario(steps ...Step) *ScenarioState {
	state := &ScenarioState{values: make(map[string]ldvalue.Value)}
	t.Defer(func() {
		if len(state.values) > 0 {
			t.Debug("Captured: %s", state)
		}
	})
	for i, step := range steps {
		t.Debug("Step %d. %s", i+1, step.Name)
		resp := t.Send(step.Request(state))
		if step.Verify != nil {
			step.Verify(t, resp)
		}
		if t.context.Failed() {
			t.Debug("Step %d failed; skipping the remaining %d step(s)", i+1, len(steps)-i-1)
			t.FailNow()
		}
		for _, c := range step.Capture {
			v := resp.Field(c.Path...)
			state.values[c.Key] = v
			t.Debug("  - %s (%s): %s", c.Key, strings.Join(c.Path, "."), v.JSONString())
		}
	}
	return state
}
