// Package framework contains the low-level test context infrastructure that the Kakao API
// contract tests are built on.
//
// The general model is:
//
// 1. A test run is a tree of named tests. Groups (Context.Group) only organize tests; leaf
// tests (Context.Run) are subject to the -run/-skip filters and produce results.
//
// 2. A Context is similar to Go's *testing.T: it satisfies testify's TestingT, so the assert
// and require packages can be used against it, and require failures stop the current test
// immediately while the rest of the run continues.
//
// 3. Each test has its own debug logger. Its output is handed to the TestLogger when the test
// finishes, so the console can show it only for failed tests if desired.
//
// The domain-specific code that knows what is being tested (request construction, the vendor
// API's expected responses) lives in the kapitests package on top of this one.
package framework
