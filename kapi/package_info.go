// Package kapi knows the shape of the Kakao REST API calls that the contract tests make:
// endpoint paths, vendor result codes, request headers, the "commerce" message template, and
// how a response body is parsed for assertions.
//
// It is deliberately not a general API client. Requests are plain values built by the tests,
// and Client only dispatches them and records what came back.
package kapi
