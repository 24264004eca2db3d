// Package kapitests contains the Kakao REST API contract tests themselves and their
// supporting API: the T type that tests are written against, scenario pipelines, and
// response assertions.
//
// Test infrastructure that is not specific to the Kakao API, such as test IDs, results,
// and filtering, is in the lower-level framework package.
package kapitests
