package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAdapterDeterminism(t *testing.T) {
	m := NewMockAdapter("mock")

	first, err := m.Search(context.Background(), Request{Prompt: "best crm?"})
	require.NoError(t, err)
	second, err := m.Search(context.Background(), Request{Prompt: "best crm?"})
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 2, m.Calls())
}

func TestMockAdapterFailNext(t *testing.T) {
	m := NewMockAdapter("mock")
	m.FailNext(NewError(CodeRateLimited, "mock", "scripted"))

	_, err := m.Search(context.Background(), Request{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, CodeRateLimited, CodeOf(err))

	// Next call succeeds again.
	_, err = m.Search(context.Background(), Request{Prompt: "q"})
	assert.NoError(t, err)
}

func TestMockAdapterCancelled(t *testing.T) {
	m := NewMockAdapter("mock")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Search(ctx, Request{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, CodeCancelled, CodeOf(err))
}

func TestRoundCost(t *testing.T) {
	assert.Equal(t, 0.0123, RoundCost(0.01234))
	assert.Equal(t, 0.0124, RoundCost(0.01235))
	assert.Equal(t, 0.0, RoundCost(0.00004))
}
