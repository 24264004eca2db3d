package kapitests

import (
	"net/http"

	"github.com/kakao-qa/kapi-contract-tests/kapi"
)

func DoPositiveTests(t *T) {
	t.Run("send me commerce message", func(t *T) {
		headers := t.Headers()
		fixture := t.Config().TestData.CommerceTemplate
		template := kapi.CommerceTemplate(fixture, kapi.PricingFromFixture(fixture))

		state := t.RunScenario(
			Step{
				Name:    "validate access token",
				Request: func(*ScenarioState) kapi.Request { return kapi.TokenInfoRequest(headers) },
				Verify: func(t *T, resp kapi.Response) {
					RequireStatus(t, resp, http.StatusOK)
					RequireField(t, resp, "id")
				},
				Capture: []Capture{
					{Key: "token_id", Path: []string{"id"}},
					{Key: "expires_in", Path: []string{"expires_in"}},
				},
			},
			Step{
				Name: "send commerce message to me",
				Request: func(*ScenarioState) kapi.Request {
					return kapi.MemoSendRequest(headers, kapi.TemplateForm(template))
				},
				Verify: func(t *T, resp kapi.Response) {
					RequireStatus(t, resp, http.StatusOK)
					RequireResultCode(t, resp, kapi.ResultCodeSuccess)
					t.Debug("  - product: %s", template.GetByKey("content").GetByKey("title").JSONString())
					t.Debug("  - buttons: %d", template.GetByKey("buttons").Count())
				},
			},
			Step{
				Name:    "get user profile",
				Request: func(*ScenarioState) kapi.Request { return kapi.UserMeRequest(headers) },
				Verify: func(t *T, resp kapi.Response) {
					RequireStatus(t, resp, http.StatusOK)
					RequireField(t, resp, "properties", "nickname")
				},
				Capture: []Capture{
					{Key: "nickname", Path: []string{"properties", "nickname"}},
					{Key: "user_id", Path: []string{"id"}},
				},
			},
		)

		t.Debug("Token valid for %s seconds; message sent to %s (%s)",
			state.Get("expires_in").JSONString(),
			state.Get("nickname").StringValue(),
			state.Get("user_id").JSONString())
	})
}
