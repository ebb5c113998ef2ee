// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler
// tests: a fake assistants API, in-memory stores and request helpers.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"geniewp/internal/middleware"
	"geniewp/internal/session"
)

type recordedCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeAssistants answers the assistants endpoints with canned objects.
type fakeAssistants struct {
	mu       sync.Mutex
	calls    []recordedCall
	messages string
	fail     bool
}

func newFakeAssistants(t *testing.T) (*fakeAssistants, *httptest.Server) {
	t.Helper()
	f := &fakeAssistants{messages: `{"object":"list","data":[]}`}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAssistants) serve(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		_ = json.Unmarshal(data, &body)
	}

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{r.Method, r.URL.Path, body})
	fail, messages := f.fail, f.messages
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/threads":
		_, _ = w.Write([]byte(`{"id":"thread_1","object":"thread"}`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/messages"):
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/runs"):
		_, _ = w.Write([]byte(`{"id":"run_1","status":"queued"}`))
	case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/runs/"):
		_, _ = w.Write([]byte(`{"id":"run_1","status":"in_progress","usage":null}`))
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/messages"):
		_, _ = w.Write([]byte(messages))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"No such route"}}`))
	}
}

func (f *fakeAssistants) setMessages(list string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = list
}

func (f *fakeAssistants) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func (f *fakeAssistants) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

// adminSession is a logged-in administrator with a known nonce.
func adminSession() *session.Data {
	return &session.Data{
		Email:        "admin@example.com",
		Capabilities: []string{session.CapManageOptions},
		Nonce:        "test-nonce",
	}
}

func withSession(r *http.Request, sess *session.Data) *http.Request {
	if sess == nil {
		return r
	}
	return r.WithContext(middleware.WithSession(r.Context(), sess))
}

func jsonRequest(method, target string, body any) *http.Request {
	data, _ := json.Marshal(body)
	r := httptest.NewRequest(method, target, strings.NewReader(string(data)))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func formRequest(method, target string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// response is the decoded {success, data} envelope.
type response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) response {
	t.Helper()
	var resp response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return resp
}

func failureMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode(t, rr)
	if resp.Success {
		t.Errorf("success = true, body %s", rr.Body.String())
	}
	var data struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Data, &data)
	return data.Message
}

func decodeInto(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	resp := decode(t, rr)
	if !resp.Success {
		t.Fatalf("request failed: %s", rr.Body.String())
	}
	if err := json.Unmarshal(resp.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
