package kapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is what came back from one API call. JSON is only meaningful if IsJSON is true;
// otherwise the body (which may be empty, as with some 404 responses) is only available as text.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	JSON       ldvalue.Value
	IsJSON     bool
}

// NewResponse parses the body as JSON if possible.
func NewResponse(statusCode int, header http.Header, body []byte) Response {
	r := Response{StatusCode: statusCode, Header: header, Body: body}
	if len(body) != 0 {
		var v ldvalue.Value
		if err := json.Unmarshal(body, &v); err == nil {
			r.JSON = v
			r.IsJSON = true
		}
	}
	return r
}

// Field returns the value at a path of object keys in the JSON body, or a null value if the
// body is not JSON or any key along the path is missing.
func (r Response) Field(path ...string) ldvalue.Value {
	v := r.JSON
	for _, key := range path {
		v = v.GetByKey(key)
	}
	return v
}

// Code returns the vendor error code from an error body.
func (r Response) Code() ldvalue.Value {
	return r.Field("code")
}

// ResultCode returns the result code from a successful message-send body.
func (r Response) ResultCode() ldvalue.Value {
	return r.Field("result_code")
}

// Message returns the vendor's error message, if any.
func (r Response) Message() string {
	return r.Field("msg").StringValue()
}

func (r Response) Text() string {
	return string(r.Body)
}

func (r Response) String() string {
	if len(r.Body) == 0 {
		return fmt.Sprintf("HTTP %d (empty body)", r.StatusCode)
	}
	return fmt.Sprintf("HTTP %d %s", r.StatusCode, r.Body)
}
