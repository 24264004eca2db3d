package kapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kakao-qa/kapi-contract-tests/framework"
)

// Client dispatches requests to one API host. It never retries, and it only times out if it was
// given a nonzero timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTPClient is like NewClient but uses an existing *http.Client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// BaseURL returns the API host that requests are sent to, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and reads the whole response. A non-2xx status is not an error; only a
// failure to build, send, or read the request is.
func (c *Client) Do(r Request, logger framework.Logger) (Response, error) {
	logger = framework.LoggerOrNull(logger)
	req, err := r.HTTPRequest(c.baseURL)
	if err != nil {
		return Response{}, err
	}

	logger.Printf("Sending %s", r)
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s failed: %w", r.Method, r.Path, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return Response{}, fmt.Errorf("reading response to %s %s: %w", r.Method, r.Path, err)
	}

	result := NewResponse(resp.StatusCode, resp.Header, body)
	logger.Printf("Received %s after %s", result, time.Since(started).Round(time.Millisecond))
	return result, nil
}
