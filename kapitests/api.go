package kapitests

import (
	"net/http"

	"github.com/kakao-qa/kapi-contract-tests/config"
	"github.com/kakao-qa/kapi-contract-tests/framework"
	"github.com/kakao-qa/kapi-contract-tests/kapi"

	"github.com/stretchr/testify/require"
)

// SuiteParams is everything the suite needs that is fixed for a whole test run.
type SuiteParams struct {
	Config config.Config
	Client *kapi.Client
}

type environment struct {
	config config.Config
	client *kapi.Client
}

// T represents a test or test group in the Kakao API contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but outside of the Go test
// runner, with per-test debug logging provided by the framework package. To make test
// assertions, use the assert and require packages (or the Require functions in this package),
// passing the *T as if it were a *testing.T. A require failure ends the current test
// immediately; the suite then continues with the next test.
//
// Every T shares the same read-only configuration, which was loaded once for the test run.
type T struct {
	context *framework.Context
	env     *environment
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a test. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Group runs a group of tests. Unlike Run, it is not affected by the test filter.
func (t *T) Group(name string, action func(*T)) {
	t.context.Group(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer schedules cleanup to run at the end of the test.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Config returns the configuration for this test run.
func (t *T) Config() config.Config {
	return t.env.config
}

// Headers returns freshly built request headers carrying the configured access token.
func (t *T) Headers() http.Header {
	return kapi.AuthHeaders(t.env.config.KakaoAPI.AccessToken)
}

// Send dispatches a request to the API. The test fails and immediately exits if the request
// could not be made at all; HTTP error statuses are returned normally.
func (t *T) Send(r kapi.Request) kapi.Response {
	resp, err := t.env.client.Do(r, t.context.DebugLogger())
	require.NoError(t, err)
	return resp
}
