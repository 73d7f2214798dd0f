package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func candidateBody(text string) string {
	raw, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(raw)
}

type mapCache struct {
	data map[string]string
	sets int
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key, value string) {
	c.sets++
	c.data[key] = value
}

func newTestClient(baseURL string, cache Cache) *Client {
	return NewClient(Options{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		FlashModel: "gemini-2.5-flash",
		ProModel:   "gemini-2.5-pro",
		Cache:      cache,
		Log:        zerolog.Nop(),
	})
}

func TestSummarize(t *testing.T) {
	var gotPath string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(candidateBody("Paciente estável.")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	got := c.Summarize(context.Background(), "JULIA DE MIRANDA", []string{"Hipertensão"})
	if got != "Paciente estável." {
		t.Errorf("summary = %q", got)
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	prompt := gotReq.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "JULIA DE MIRANDA") || !strings.Contains(prompt, "Hipertensão") {
		t.Errorf("prompt = %q", prompt)
	}
	if gotReq.GenerationConfig == nil || gotReq.GenerationConfig.Temperature != 0.7 {
		t.Errorf("generation config = %+v", gotReq.GenerationConfig)
	}
}

func TestSuggestDiagnosesUsesProModel(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(candidateBody("Três hipóteses.")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	got := c.SuggestDiagnoses(context.Background(), "febre e tosse")
	if got != "Três hipóteses." {
		t.Errorf("diagnosis = %q", got)
	}
	if gotPath != "/v1beta/models/gemini-2.5-pro:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exhausted", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	if got := c.Summarize(context.Background(), "X", nil); got != fallbackSummary {
		t.Errorf("got %q, want fallback", got)
	}
	if got := c.SuggestDiagnoses(context.Background(), "x"); got != fallbackDiagnosis {
		t.Errorf("got %q, want fallback", got)
	}
	if got := c.DraftPrescription(context.Background(), "x"); got != fallbackPrescription {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestFallbackOnMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	if got := c.Summarize(context.Background(), "X", nil); got != fallbackSummary {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestFallbackOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	if got := c.DraftPrescription(context.Background(), "gripe"); got != fallbackPrescription {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestUnconfiguredClient(t *testing.T) {
	c := NewClient(Options{Log: zerolog.Nop()})
	if c.Configured() {
		t.Fatal("client with no key reports configured")
	}
	// No server at all: the call must short-circuit to the fallback.
	if got := c.Summarize(context.Background(), "X", nil); got != fallbackSummary {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestResponseCaching(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(candidateBody("Resumo.")))
	}))
	defer srv.Close()

	cache := &mapCache{data: map[string]string{}}
	c := newTestClient(srv.URL, cache)

	first := c.Summarize(context.Background(), "X", []string{"a"})
	second := c.Summarize(context.Background(), "X", []string{"a"})
	if first != second || first != "Resumo." {
		t.Errorf("answers diverged: %q vs %q", first, second)
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}
	if cache.sets != 1 {
		t.Errorf("cache written %d times, want 1", cache.sets)
	}

	// A different prompt misses the cache.
	c.Summarize(context.Background(), "Y", []string{"b"})
	if calls != 2 {
		t.Errorf("upstream called %d times, want 2", calls)
	}
}

func TestFallbackNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := &mapCache{data: map[string]string{}}
	c := newTestClient(srv.URL, cache)
	c.Summarize(context.Background(), "X", nil)
	if cache.sets != 0 {
		t.Errorf("fallback was cached (%d sets)", cache.sets)
	}
}

func TestPromptKeyDistinguishesModels(t *testing.T) {
	if promptKey("a", "p") == promptKey("b", "p") {
		t.Error("same key for different models")
	}
	if promptKey("a", "p1") == promptKey("a", "p2") {
		t.Error("same key for different prompts")
	}
}
