package kapitests

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/kakao-qa/kapi-contract-tests/kapi"

	"github.com/go-chi/chi/v5"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// fakeKakaoAPI imitates the parts of the Kakao REST API that the suite calls, closely enough
// for the suite's assertions.
type fakeKakaoAPI struct {
	validToken string
	resultCode int
	nickname   string
	overrides  map[string]http.Handler

	lock      sync.Mutex
	templates []ldvalue.Value
}

func newFakeKakaoAPI(validToken string) *fakeKakaoAPI {
	return &fakeKakaoAPI{
		validToken: validToken,
		resultCode: kapi.ResultCodeSuccess,
		nickname:   "ryan",
		overrides:  make(map[string]http.Handler),
	}
}

func (f *fakeKakaoAPI) handler() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Group(func(r chi.Router) {
		r.Use(f.requireToken)
		r.Method(http.MethodGet, kapi.AccessTokenInfoPath, f.route(kapi.AccessTokenInfoPath, f.tokenInfo))
		r.Method(http.MethodPost, kapi.MemoSendPath, f.route(kapi.MemoSendPath, f.memoSend))
		r.Method(http.MethodGet, kapi.UserMePath, f.route(kapi.UserMePath, f.userMe))
	})
	return r
}

func (f *fakeKakaoAPI) route(path string, h http.HandlerFunc) http.Handler {
	if o, ok := f.overrides[path]; ok {
		return o
	}
	return h
}

func (f *fakeKakaoAPI) sentTemplates() []ldvalue.Value {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]ldvalue.Value(nil), f.templates...)
}

func (f *fakeKakaoAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.validToken {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"msg":  "this access token does not exist",
				"code": kapi.CodeInvalidToken,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeKakaoAPI) tokenInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":         1234567890,
		"expires_in": 7199,
		"app_id":     123456,
	})
}

func (f *fakeKakaoAPI) memoSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"msg": err.Error(), "code": kapi.CodeInvalidArgument})
		return
	}
	values, ok := r.PostForm[kapi.TemplateObjectField]
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"msg":  "template_object is required",
			"code": kapi.CodeInvalidArgument,
		})
		return
	}
	var template ldvalue.Value
	if err := json.Unmarshal([]byte(values[0]), &template); err != nil || template.Type() != ldvalue.ObjectType {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"msg":  "template_object is not a valid JSON object",
			"code": kapi.CodeInvalidArgument,
		})
		return
	}
	f.lock.Lock()
	f.templates = append(f.templates, template)
	f.lock.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"result_code": f.resultCode})
}

func (f *fakeKakaoAPI) userMe(w http.ResponseWriter, _ *http.Request) {
	properties := map[string]interface{}{}
	if f.nickname != "" {
		properties["nickname"] = f.nickname
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":         1234567890,
		"properties": properties,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
