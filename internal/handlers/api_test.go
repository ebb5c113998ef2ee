// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"geniewp/internal/assistant"
	"geniewp/internal/models"
	"geniewp/internal/store"
)

func newTestAPI(t *testing.T, settings map[string]string) (*API, *fakeAssistants, *store.MemorySettings) {
	t.Helper()
	fake, srv := newFakeAssistants(t)
	st := store.NewMemorySettings(settings)
	proxy := assistant.NewProxy(assistant.NewClient(srv.URL, 5*time.Second), st, assistant.NewMemoryValues(), "")
	return NewAPI(proxy, NewTemplates(afero.NewMemMapFs(), "/templates")), fake, st
}

func withKey() map[string]string {
	return map[string]string{models.OptionAPIKey: "sk-test"}
}

func TestSendRequiresStep(t *testing.T) {
	api, fake, _ := newTestAPI(t, withKey())

	rr := httptest.NewRecorder()
	api.Send(rr, jsonRequest(http.MethodPost, "/quickwp/v1/send", map[string]string{"message": "hi"}))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if msg := failureMessage(t, rr); msg != "Missing parameter(s): step" {
		t.Errorf("message = %q", msg)
	}
	if len(fake.recorded()) != 0 {
		t.Error("no remote call expected")
	}
}

func TestSendWithoutAPIKey(t *testing.T) {
	api, _, _ := newTestAPI(t, nil)

	rr := httptest.NewRecorder()
	api.Send(rr, jsonRequest(http.MethodPost, "/quickwp/v1/send", map[string]string{"step": "site-topic"}))

	if msg := failureMessage(t, rr); msg != "API key is missing." {
		t.Errorf("message = %q", msg)
	}
}

func TestSendJSONAndForm(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{
			name: "json",
			req: jsonRequest(http.MethodPost, "/quickwp/v1/send",
				map[string]string{"step": "site-topic", "message": "A bakery", "template": "tpl"}),
		},
		{
			name: "form",
			req: formRequest(http.MethodPost, "/quickwp/v1/send",
				url.Values{"step": {"site-topic"}, "message": {"A bakery"}, "template": {"tpl"}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, fake, st := newTestAPI(t, withKey())

			rr := httptest.NewRecorder()
			api.Send(rr, tt.req)

			resp := decode(t, rr)
			if rr.Code != http.StatusOK || !resp.Success {
				t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
			}
			var ref assistant.RunRef
			_ = json.Unmarshal(resp.Data, &ref)
			if ref.ThreadID != "thread_1" || ref.RunID != "run_1" {
				t.Errorf("ref = %+v", ref)
			}
			if got, _ := st.Get(context.Background(), models.OptionThreadID); got != "thread_1" {
				t.Errorf("stored thread = %q", got)
			}
			calls := fake.recorded()
			if calls[0].Body["metadata"].(map[string]any)["template"] != "tpl" {
				t.Errorf("create body = %v", calls[0].Body)
			}
		})
	}
}

func TestSendSurfacesRemoteError(t *testing.T) {
	api, fake, _ := newTestAPI(t, withKey())
	fake.setFail(true)

	rr := httptest.NewRecorder()
	api.Send(rr, jsonRequest(http.MethodPost, "/quickwp/v1/send", map[string]string{"step": "welcome"}))

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
	if msg := failureMessage(t, rr); msg != "Incorrect API key provided" {
		t.Errorf("message = %q", msg)
	}
}

func TestStatus(t *testing.T) {
	api, _, _ := newTestAPI(t, withKey())

	rr := httptest.NewRecorder()
	api.Status(rr, httptest.NewRequest(http.MethodGet, "/quickwp/v1/status?thread_id=thread_1", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing run_id: status = %d", rr.Code)
	}
	if msg := failureMessage(t, rr); msg != "Missing parameter(s): run_id" {
		t.Errorf("message = %q", msg)
	}

	rr = httptest.NewRecorder()
	api.Status(rr, httptest.NewRequest(http.MethodGet, "/quickwp/v1/status?thread_id=thread_1&run_id=run_1", nil))
	resp := decode(t, rr)
	if string(resp.Data) != `{"id":"run_1","status":"in_progress","usage":null}` {
		t.Errorf("data = %s", resp.Data)
	}
}

func TestGetExtractsValues(t *testing.T) {
	api, fake, _ := newTestAPI(t, withKey())
	reply := "Here you go:\n```json\n[{\"slug\":\"hero\",\"order\":1,\"strings\":[{\"slug\":\"title\",\"value\":\"Bread & Co\"}]," +
		"\"images\":[{\"slug\":\"bg\",\"src\":\"https://images.pexels.com/1.jpg\"},{\"slug\":\"bad\",\"src\":\"https://evil.example/x.jpg\"}]}]\n```"
	list := map[string]any{
		"object": "list",
		"data": []any{map[string]any{
			"role":    "assistant",
			"content": []any{map[string]any{"type": "text", "text": map[string]any{"value": reply}}},
		}},
	}
	data, _ := json.Marshal(list)
	fake.setMessages(string(data))

	rr := httptest.NewRecorder()
	api.Get(rr, httptest.NewRequest(http.MethodGet, "/quickwp/v1/get?thread_id=thread_1", nil))
	if !decode(t, rr).Success {
		t.Fatalf("get failed: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	api.Values(rr, httptest.NewRequest(http.MethodGet, "/quickwp/v1/values", nil))
	var values []models.GuidedValue
	_ = json.Unmarshal(decode(t, rr).Data, &values)

	byFilter := map[string]string{}
	for _, v := range values {
		byFilter[v.Filter] = v.Value
	}
	if byFilter["quickwp/title"] != "Bread &amp; Co" {
		t.Errorf("title value = %q", byFilter["quickwp/title"])
	}
	if byFilter["quickwp/bg"] != "https://images.pexels.com/1.jpg" {
		t.Errorf("bg value = %q", byFilter["quickwp/bg"])
	}
	if _, ok := byFilter["quickwp/bad"]; ok {
		t.Error("untrusted image must not be stored")
	}
}

func TestExport(t *testing.T) {
	api, fake, st := newTestAPI(t, withKey())

	rr := httptest.NewRecorder()
	api.Export(rr, formRequest(http.MethodPost, "/quickwp/v1/export", url.Values{
		"title":       {"Acme Bakery"},
		"description": {"Fresh bread"},
		"images[]":    {"https://images.pexels.com/1.jpg", "https://images.pexels.com/2.jpg"},
	}))

	resp := decode(t, rr)
	if !resp.Success {
		t.Fatalf("export failed: %s", rr.Body.String())
	}
	var ref assistant.RunRef
	_ = json.Unmarshal(resp.Data, &ref)
	if ref.Slug != "acme-bakery" {
		t.Errorf("slug = %q", ref.Slug)
	}

	create := fake.recorded()[0]
	msgs, _ := create.Body["messages"].([]any)
	content, _ := msgs[0].(map[string]any)["content"].(string)
	if !strings.Contains(content, "named Acme Bakery") || !strings.Contains(content, "2.jpg") {
		t.Errorf("export prompt = %q", content)
	}
	if got, _ := st.Get(context.Background(), models.OptionThreadID); got != "" {
		t.Errorf("export must not store its thread, got %q", got)
	}
}

func TestExportRequiresTitle(t *testing.T) {
	api, _, _ := newTestAPI(t, withKey())

	rr := httptest.NewRecorder()
	api.Export(rr, jsonRequest(http.MethodPost, "/quickwp/v1/export", map[string]any{"images": []string{"a"}}))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestResetThread(t *testing.T) {
	api, _, st := newTestAPI(t, map[string]string{models.OptionAPIKey: "sk-test", models.OptionThreadID: "thread_9"})

	rr := httptest.NewRecorder()
	api.ResetThread(rr, httptest.NewRequest(http.MethodDelete, "/quickwp/v1/thread", nil))

	if !decode(t, rr).Success {
		t.Fatalf("reset failed: %s", rr.Body.String())
	}
	if got, _ := st.Get(context.Background(), models.OptionThreadID); got != "" {
		t.Errorf("thread id = %q, want cleared", got)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	api, _, _ := newTestAPI(t, withKey())

	req := httptest.NewRequest(http.MethodPost, "/quickwp/v1/send", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.Send(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestTemplatesList(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/templates/b-portfolio.json", []byte(`{"name":"Portfolio"}`), 0o644)
	_ = afero.WriteFile(fsys, "/templates/a-shop.json", []byte(`{"name":"Shop","pages":[1,2]}`), 0o644)
	_ = afero.WriteFile(fsys, "/templates/c-empty.json", []byte("  \n"), 0o644)
	_ = afero.WriteFile(fsys, "/templates/d-broken.json", []byte(`{"name":`), 0o644)
	_ = afero.WriteFile(fsys, "/templates/readme.txt", []byte(`{"name":"no"}`), 0o644)

	api := NewAPI(nil, NewTemplates(fsys, "/templates"))
	rr := httptest.NewRecorder()
	api.Templates(rr, httptest.NewRequest(http.MethodGet, "/quickwp/v1/templates", nil))

	resp := decode(t, rr)
	if string(resp.Data) != `[{"name":"Shop","pages":[1,2]},{"name":"Portfolio"}]` {
		t.Errorf("data = %s", resp.Data)
	}
}

func TestTemplatesMissingDir(t *testing.T) {
	list, err := NewTemplates(afero.NewMemMapFs(), "/nowhere").List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list = %v", list)
	}
}
