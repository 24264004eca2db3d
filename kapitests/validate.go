package kapitests

import (
	"strings"

	"github.com/kakao-qa/kapi-contract-tests/kapi"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// RequireStatus fails the test immediately if the response does not have the expected HTTP
// status.
func RequireStatus(t require.TestingT, resp kapi.Response, expected int) {
	require.Equal(t, expected, resp.StatusCode, "unexpected HTTP status; response was: %s", resp)
}

// RequireJSON fails the test immediately if the response body is not JSON.
func RequireJSON(t require.TestingT, resp kapi.Response) {
	require.True(t, resp.IsJSON, "expected a JSON response body; response was: %s", resp)
}

// RequireVendorCode fails the test immediately unless the body's "code" field has the
// expected value.
func RequireVendorCode(t require.TestingT, resp kapi.Response, expected int) {
	requireIntField(t, resp, expected, "code")
}

// RequireResultCode fails the test immediately unless the body's "result_code" field has
// the expected value.
func RequireResultCode(t require.TestingT, resp kapi.Response, expected int) {
	requireIntField(t, resp, expected, "result_code")
}

// RequireField fails the test immediately unless the body has a non-null value at the given
// path of object keys. It returns the value.
func RequireField(t require.TestingT, resp kapi.Response, path ...string) ldvalue.Value {
	RequireJSON(t, resp)
	v := resp.Field(path...)
	require.False(t, v.IsNull(), "expected a non-null %q field; response was: %s", strings.Join(path, "."), resp)
	return v
}

func requireIntField(t require.TestingT, resp kapi.Response, expected int, path ...string) {
	name := strings.Join(path, ".")
	v := RequireField(t, resp, path...)
	require.True(t, v.IsInt(), "expected %q to be an integer; response was: %s", name, resp)
	require.Equal(t, expected, v.IntValue(), "unexpected %q; response was: %s", name, resp)
}
