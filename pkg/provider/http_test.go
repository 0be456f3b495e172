package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, serverURL string) *OpenAIAdapter {
	t.Helper()
	t.Setenv("TEST_OPENAI_KEY", "sk-test")
	adapter, err := NewOpenAIAdapter(Config{
		Name:         "openai",
		APIKeyEnv:    "TEST_OPENAI_KEY",
		BaseURL:      serverURL,
		DefaultModel: "gpt-4o-mini",
		CostPerQuery: 0.01,
	})
	require.NoError(t, err)
	return adapter
}

func TestOpenAISearchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4o-mini",
			"choices": [{"message": {"role": "assistant", "content": "BrandLens is great."}}],
			"usage": {"prompt_tokens": 1000, "completion_tokens": 2000}
		}`))
	}))
	defer server.Close()

	adapter := newTestOpenAI(t, server.URL)
	resp, err := adapter.Search(context.Background(), Request{Prompt: "best audit tool?"})
	require.NoError(t, err)

	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "BrandLens is great.", resp.Text)
	assert.Equal(t, 1000, resp.TokensIn)
	assert.Equal(t, 2000, resp.TokensOut)
	// 1000 in + 2000 out at gpt-4o-mini rates.
	assert.InDelta(t, 0.0014, resp.Cost, 0.0001)
	assert.False(t, resp.Cached)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		retryAfter string
		expected   Code
	}{
		{name: "unauthorized", status: 401, expected: CodeUnauthorized},
		{name: "forbidden", status: 403, expected: CodeUnauthorized},
		{name: "rate limited", status: 429, retryAfter: "12", expected: CodeRateLimited},
		{name: "quota via body", status: 429, body: `{"error":{"type":"insufficient_quota"}}`, expected: CodeQuotaExceeded},
		{name: "bad request", status: 400, expected: CodeInvalidRequest},
		{name: "server error", status: 503, expected: CodeProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			adapter := newTestOpenAI(t, server.URL)
			_, err := adapter.Search(context.Background(), Request{Prompt: "q"})
			require.Error(t, err)
			assert.Equal(t, tt.expected, CodeOf(err))

			if tt.retryAfter != "" && tt.expected == CodeRateLimited {
				assert.Equal(t, 12*time.Second, RetryAfterOf(err))
			}
		})
	}
}

func TestTimeoutMapsToTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect;
		// otherwise r.Context() is never cancelled and Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	adapter := newTestOpenAI(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.Search(ctx, Request{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, CodeTimeout, CodeOf(err))
}

func TestCancelMapsToCancelled(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	adapter := newTestOpenAI(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := adapter.Search(ctx, Request{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, CodeCancelled, CodeOf(err))
}

func TestMissingAPIKey(t *testing.T) {
	require.NoError(t, os.Unsetenv("DEFINITELY_UNSET_KEY"))
	_, err := NewOpenAIAdapter(Config{Name: "openai", APIKeyEnv: "DEFINITELY_UNSET_KEY"})
	require.Error(t, err)
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
}

func TestPerplexityCitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"model": "sonar",
			"citations": ["https://example.com/a", "https://example.com/b"],
			"choices": [{"message": {"content": "answer"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 20}
		}`))
	}))
	defer server.Close()

	t.Setenv("TEST_PPLX_KEY", "pk-test")
	adapter, err := NewPerplexityAdapter(Config{
		Name:      "perplexity",
		APIKeyEnv: "TEST_PPLX_KEY",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	resp, err := adapter.Search(context.Background(), Request{Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, resp.Citations)
}
