package kapitests

import (
	"net/http"

	"github.com/kakao-qa/kapi-contract-tests/kapi"
)

// DoNegativeTests runs tests that each break exactly one thing about an otherwise valid call.
func DoNegativeTests(t *T) {
	t.Run("invalid token", func(t *T) {
		headers := kapi.AuthHeaders(t.Config().TestData.NegativeTestData.Token())
		t.RunScenario(Step{
			Name:    "validate invalid access token",
			Request: func(*ScenarioState) kapi.Request { return kapi.TokenInfoRequest(headers) },
			Verify: func(t *T, resp kapi.Response) {
				RequireStatus(t, resp, http.StatusUnauthorized)
				RequireVendorCode(t, resp, kapi.CodeInvalidToken)
				t.Debug("  - vendor message: %s", resp.Message())
			},
		})
	})

	t.Run("invalid URL path", func(t *T) {
		path := t.Config().TestData.NegativeTestData.Path()
		t.RunScenario(Step{
			Name:    "request nonexistent path " + path,
			Request: func(*ScenarioState) kapi.Request { return kapi.GetRequest(path, t.Headers()) },
			Verify: func(t *T, resp kapi.Response) {
				RequireStatus(t, resp, http.StatusNotFound)
			},
		})
	})

	t.Run("missing template_object", func(t *T) {
		t.RunScenario(Step{
			Name:    "send message with empty form",
			Request: func(*ScenarioState) kapi.Request { return kapi.MemoSendRequest(t.Headers(), nil) },
			Verify: func(t *T, resp kapi.Response) {
				RequireStatus(t, resp, http.StatusBadRequest)
				RequireVendorCode(t, resp, kapi.CodeInvalidArgument)
				t.Debug("  - vendor message: %s", resp.Message())
			},
		})
	})

	t.Run("malformed template_object", func(t *T) {
		malformed := t.Config().TestData.NegativeTestData.InvalidJSONFormat
		t.RunScenario(Step{
			Name: "send message with malformed template_object",
			Request: func(*ScenarioState) kapi.Request {
				return kapi.MemoSendRequest(t.Headers(), kapi.RawTemplateForm(malformed))
			},
			Verify: func(t *T, resp kapi.Response) {
				RequireStatus(t, resp, http.StatusBadRequest)
				RequireJSON(t, resp)
				t.Debug("  - vendor code %s: %s", resp.Code().JSONString(), resp.Message())
			},
		})
	})
}
