package kapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kakao-qa/kapi-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo(t *testing.T) {
	headers := http.Header{"Content-Type": {"application/json"}}
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, headers, []byte(`{"result_code":0}`)))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var debug framework.CapturingLogger
		client := NewClient(server.URL, 0)

		resp, err := client.Do(MemoSendRequest(AuthHeaders("abc"), RawTemplateForm("{}")), &debug)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 0, resp.ResultCode().IntValue())
		assert.True(t, resp.ResultCode().IsNumber())

		require.Len(t, requestsCh, 1)
		info := <-requestsCh
		assert.Equal(t, "POST", info.Request.Method)
		assert.Equal(t, MemoSendPath, info.Request.URL.Path)
		assert.Equal(t, "Bearer abc", info.Request.Header.Get("Authorization"))
		assert.Equal(t, "template_object=%7B%7D", string(info.Body))

		output := debug.Output()
		require.Len(t, output, 2)
		assert.Equal(t, "Sending POST /v2/api/talk/memo/default/send with form template_object=%7B%7D", output[0].Message)
		assert.Contains(t, output[1].Message, `Received HTTP 200 {"result_code":0}`)
	})
}

func TestClientDoReturnsErrorStatusesAsResponses(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		resp, err := NewClient(server.URL, time.Second).Do(GetRequest("/v2/user/mes", nil), nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.False(t, resp.IsJSON)
	})
}

func TestClientDoReturnsTransportErrors(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	_, err := NewClientWithHTTPClient(url, nil).Do(UserMeRequest(nil), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /v2/user/me failed")
}

func TestClientBaseURLHasNoTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://kapi.kakao.com", NewClient("https://kapi.kakao.com/", 0).BaseURL())
	assert.Equal(t, "http://localhost:8080", NewClientWithHTTPClient("http://localhost:8080", nil).BaseURL())
}

func TestClientDoWithNilLoggerDiscardsDebugOutput(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(204), func(server *httptest.Server) {
		resp, err := NewClient(server.URL+"/", 0).Do(TokenInfoRequest(AuthHeaders("abc")), nil)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	})
}
