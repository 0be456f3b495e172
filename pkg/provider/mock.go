package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// MockAdapter is a deterministic in-process backend used by tests and by
// dry-run audits. Responses are a pure function of the request prompt,
// and failures can be scripted per call.
type MockAdapter struct {
	name         string
	defaultModel string
	costPerQuery float64
	latency      time.Duration

	mu       sync.Mutex
	calls    int
	failures []error          // scripted errors, consumed in order
	respond  func(Request) string
}

// MockOption configures a MockAdapter.
type MockOption func(*MockAdapter)

// WithMockLatency makes each call sleep for d (cancellable via ctx).
func WithMockLatency(d time.Duration) MockOption {
	return func(m *MockAdapter) { m.latency = d }
}

// WithMockCost sets the flat per-call cost.
func WithMockCost(cost float64) MockOption {
	return func(m *MockAdapter) { m.costPerQuery = cost }
}

// WithMockResponder overrides the default deterministic text generator.
func WithMockResponder(fn func(Request) string) MockOption {
	return func(m *MockAdapter) { m.respond = fn }
}

// NewMockAdapter builds a mock provider with the given name.
func NewMockAdapter(name string, opts ...MockOption) *MockAdapter {
	m := &MockAdapter{
		name:         name,
		defaultModel: "mock-1",
		costPerQuery: 0.001,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockAdapter) Name() string         { return m.name }
func (m *MockAdapter) DefaultModel() string { return m.defaultModel }

func (m *MockAdapter) EstimateCost(Request) float64 { return RoundCost(m.costPerQuery) }

// FailNext queues errs to be returned by the next len(errs) calls, before
// any scripted responses resume.
func (m *MockAdapter) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, errs...)
}

// Calls returns how many Search calls have been made.
func (m *MockAdapter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Search returns a deterministic response for req, or the next scripted
// failure.
func (m *MockAdapter) Search(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.calls++
	var scripted error
	if len(m.failures) > 0 {
		scripted = m.failures[0]
		m.failures = m.failures[1:]
	}
	respond := m.respond
	m.mu.Unlock()

	if m.latency > 0 {
		select {
		case <-time.After(m.latency):
		case <-ctx.Done():
			return nil, m.mapCtxErr(ctx)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, m.mapCtxErr(ctx)
	}
	if scripted != nil {
		return nil, scripted
	}

	text := ""
	if respond != nil {
		text = respond(req)
	}
	if text == "" {
		text = fmt.Sprintf("mock answer %d for: %s", promptDigest(req.Prompt), req.Prompt)
	}

	model := req.Model
	if model == "" {
		model = m.defaultModel
	}
	return &Response{
		Provider:  m.name,
		Model:     model,
		Text:      text,
		TokensIn:  len(req.Prompt) / 4,
		TokensOut: len(text) / 4,
		Cost:      RoundCost(m.costPerQuery),
		LatencyMS: int(m.latency.Milliseconds()),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *MockAdapter) mapCtxErr(ctx context.Context) error {
	if ctx.Err() == context.DeadlineExceeded {
		return WrapError(CodeTimeout, m.name, ctx.Err())
	}
	return WrapError(CodeCancelled, m.name, ctx.Err())
}

func promptDigest(prompt string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return h.Sum32() % 10000
}
