package kapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	AccessTokenInfoPath = "/v1/user/access_token_info"
	MemoSendPath        = "/v2/api/talk/memo/default/send"
	UserMePath          = "/v2/user/me"
)

// Vendor error codes and result codes carried in response bodies.
const (
	ResultCodeSuccess   = 0
	CodeInvalidArgument = -2
	CodeInvalidToken    = -401
)

const (
	FormContentType     = "application/x-www-form-urlencoded"
	TemplateObjectField = "template_object"
)

// Request is the context of a single API call. Form is nil for requests without a body.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Form   url.Values
}

// AuthHeaders returns the headers every call is made with.
func AuthHeaders(accessToken string) http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+accessToken)
	h.Set("Content-Type", FormContentType)
	return h
}

func GetRequest(path string, header http.Header) Request {
	return Request{Method: http.MethodGet, Path: path, Header: header}
}

func TokenInfoRequest(header http.Header) Request {
	return GetRequest(AccessTokenInfoPath, header)
}

func UserMeRequest(header http.Header) Request {
	return GetRequest(UserMePath, header)
}

// MemoSendRequest posts a "send to me" message. An empty form is still sent as an (empty)
// form-encoded body.
func MemoSendRequest(header http.Header, form url.Values) Request {
	if form == nil {
		form = url.Values{}
	}
	return Request{Method: http.MethodPost, Path: MemoSendPath, Header: header, Form: form}
}

// HTTPRequest converts the request into an *http.Request against the given API host.
func (r Request) HTTPRequest(baseURL string) (*http.Request, error) {
	var body io.Reader
	if r.Form != nil {
		body = strings.NewReader(r.Form.Encode())
	}
	req, err := http.NewRequest(r.Method, strings.TrimRight(baseURL, "/")+r.Path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", r.Method, r.Path, err)
	}
	for k, vv := range r.Header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

func (r Request) String() string {
	if r.Form == nil {
		return r.Method + " " + r.Path
	}
	return fmt.Sprintf("%s %s with form %s", r.Method, r.Path, r.Form.Encode())
}
