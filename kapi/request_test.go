package kapi

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHeaders(t *testing.T) {
	h := AuthHeaders("abc")
	assert.Equal(t, "Bearer abc", h.Get("Authorization"))
	assert.Equal(t, "application/x-www-form-urlencoded", h.Get("Content-Type"))
}

func TestGetRequests(t *testing.T) {
	h := AuthHeaders("abc")

	r := TokenInfoRequest(h)
	assert.Equal(t, Request{Method: "GET", Path: "/v1/user/access_token_info", Header: h}, r)

	r = UserMeRequest(h)
	assert.Equal(t, "/v2/user/me", r.Path)
	assert.Nil(t, r.Form)
	assert.Equal(t, "GET /v2/user/me", r.String())
}

func TestMemoSendRequestWithoutFormHasEmptyBody(t *testing.T) {
	r := MemoSendRequest(AuthHeaders("abc"), nil)
	assert.Equal(t, "POST", r.Method)
	assert.Equal(t, "/v2/api/talk/memo/default/send", r.Path)
	require.NotNil(t, r.Form)

	req, err := r.HTTPRequest("https://kapi.example.com/")
	require.NoError(t, err)
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHTTPRequest(t *testing.T) {
	r := MemoSendRequest(AuthHeaders("abc"), url.Values{"template_object": {`{"a":1}`}})

	req, err := r.HTTPRequest("https://kapi.example.com/")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://kapi.example.com/v2/api/talk/memo/default/send", req.URL.String())
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	assert.Equal(t, FormContentType, req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "template_object=%7B%22a%22%3A1%7D", string(body))
}

func TestHTTPRequestWithBadURL(t *testing.T) {
	_, err := GetRequest("/x", nil).HTTPRequest("://bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "building GET /x")
}
