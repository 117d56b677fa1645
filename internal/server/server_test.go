package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphml/pkg/cache"
	"github.com/matzehuels/graphml/pkg/observability"
)

const sampleGraph = `{
  "nodes": [{"id": "a", "label": "A & B"}, {"id": "b"}],
  "edges": [{"from": "a", "to": "b", "label": "uses"}]
}`

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	return New(c, log.New(&logs), Config{MaxBodyBytes: 1024}), &logs
}

func post(t *testing.T, s *Server, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestGraphML(t *testing.T) {
	s, _ := newTestServer(t)
	rec := post(t, s, "/v1/graphml?node_weights=display&edge_weights=display", "application/json", sampleGraph)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypeXML {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<graph edgedefault="directed">`,
		`<node id="n0"><data key="weight">A &amp; B</data></node>`,
		`<edge id="e0" source="n0" target="n1"><data key="edge_weight">uses</data></edge>`,
		`<key id="weight" for="node" attr.name="weight" attr.type="string" />`,
		`<key id="edge_weight" for="edge" attr.name="weight" attr.type="string" />`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %s:\n%s", want, body)
		}
	}
}

func TestGraphMLCached(t *testing.T) {
	s, _ := newTestServer(t)
	first := post(t, s, "/v1/graphml?pretty=true", "", sampleGraph)
	second := post(t, s, "/v1/graphml?pretty=true", "", sampleGraph)

	if first.Header().Get("X-Cache") != "MISS" || second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q, %q; want MISS, HIT",
			first.Header().Get("X-Cache"), second.Header().Get("X-Cache"))
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs from fresh render")
	}

	// Different options miss the cache
	third := post(t, s, "/v1/graphml?pretty=false", "", sampleGraph)
	if third.Header().Get("X-Cache") != "MISS" {
		t.Error("different options should not hit the cache")
	}
}

func TestGraphMLTOML(t *testing.T) {
	s, _ := newTestServer(t)
	body := "directed = false\n[[nodes]]\nid = \"a\"\n"
	rec := post(t, s, "/v1/graphml", "application/toml; charset=utf-8", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `<graph edgedefault="undirected"><node id="n0" /></graph>`) {
		t.Errorf("unexpected body:\n%s", rec.Body)
	}
}

func TestGraphMLErrors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"unknown exporter", "/v1/graphml?node_weights=fancy", "", sampleGraph, http.StatusBadRequest, "INVALID_EXPORTER"},
		{"bad pretty", "/v1/graphml?pretty=maybe", "", sampleGraph, http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed json", "/v1/graphml", "", "{", http.StatusBadRequest, "INVALID_INPUT"},
		{"dangling edge", "/v1/graphml", "", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"x"}]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"duplicate node", "/v1/graphml", "", `{"nodes":[{"id":"a"},{"id":"a"}]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unsupported type", "/v1/graphml", "text/plain", sampleGraph, http.StatusUnsupportedMediaType, "UNSUPPORTED"},
		{"too large", "/v1/graphml", "", strings.Repeat(" ", 2048), http.StatusRequestEntityTooLarge, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			rec := post(t, s, tt.target, tt.contentType, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body)
			}
			detail := decodeError(t, rec)
			if string(detail.Code) != tt.wantCode {
				t.Errorf("code = %s, want %s", detail.Code, tt.wantCode)
			}
			if detail.Message == "" {
				t.Error("error message should not be empty")
			}
			if detail.RequestID == "" || detail.RequestID != rec.Header().Get(HeaderRequestID) {
				t.Errorf("request id = %q, header = %q", detail.RequestID, rec.Header().Get(HeaderRequestID))
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/graphml", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	s, logs := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "req-123" {
		t.Errorf("incoming request id not echoed: %q", got)
	}
	if !strings.Contains(logs.String(), "req-123") {
		t.Errorf("request log should carry the id:\n%s", logs)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if len(rec.Header().Get(HeaderRequestID)) != 36 {
		t.Errorf("generated request id should be a uuid: %q", rec.Header().Get(HeaderRequestID))
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s := New(nil, log.New(io.Discard), Config{Addr: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return after cancel")
	}
}

type countingHooks struct {
	observability.NoopExportHooks
	hits, misses, sets, exports, responses int
	lastStats                              observability.ExportStats
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }
func (h *countingHooks) OnExportComplete(_ context.Context, _ string, s observability.ExportStats, _ time.Duration, _ error) {
	h.exports++
	h.lastStats = s
}
func (h *countingHooks) OnResponse(context.Context, string, string, int, time.Duration) {
	h.responses++
}

func TestHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetExportHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	defer observability.Reset()

	s, _ := newTestServer(t)
	post(t, s, "/v1/graphml", "", sampleGraph)
	post(t, s, "/v1/graphml", "", sampleGraph)

	if h.misses != 1 || h.hits != 1 || h.sets != 1 {
		t.Errorf("cache hooks: misses=%d hits=%d sets=%d, want 1 each", h.misses, h.hits, h.sets)
	}
	if h.exports != 1 || h.lastStats.Nodes != 2 || h.lastStats.Edges != 1 || h.lastStats.Bytes == 0 {
		t.Errorf("export hooks: exports=%d stats=%+v", h.exports, h.lastStats)
	}
	if h.responses != 2 {
		t.Errorf("http hooks: responses=%d, want 2", h.responses)
	}
}
