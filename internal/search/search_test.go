package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeGateway struct {
	mu      sync.Mutex
	queries []string
	results []models.SearchResult
	err     error
}

func (g *fakeGateway) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queries = append(g.queries, query)
	return g.results, g.err
}

func (g *fakeGateway) Queries() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.queries))
	copy(out, g.queries)
	return out
}

type sink struct {
	mu    sync.Mutex
	calls [][]models.SearchResult
	ch    chan struct{}
}

func newSink() *sink {
	return &sink{ch: make(chan struct{}, 16)}
}

func (s *sink) push(results []models.SearchResult) {
	s.mu.Lock()
	s.calls = append(s.calls, results)
	s.mu.Unlock()
	s.ch <- struct{}{}
}

func (s *sink) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("sink never called")
	}
}

func (s *sink) last() []models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

func TestDebounceCoalescesKeystrokes(t *testing.T) {
	gw := &fakeGateway{results: []models.SearchResult{{ID: "1", Title: "abc shop"}}}
	out := newSink()
	w := NewWidget(gw, 30*time.Millisecond, zaptest.NewLogger(t), out.push)
	defer w.Close()

	ctx := context.Background()
	w.Input(ctx, "a")
	w.Input(ctx, "ab")
	w.Input(ctx, "abc")

	out.wait(t)
	assert.Equal(t, []string{"abc"}, gw.Queries())
	require.Len(t, out.last(), 1)
	assert.Equal(t, "abc shop", out.last()[0].Title)
}

func TestEmptyQueryClearsWithoutNetwork(t *testing.T) {
	gw := &fakeGateway{}
	out := newSink()
	w := NewWidget(gw, 30*time.Millisecond, zaptest.NewLogger(t), out.push)
	defer w.Close()

	ctx := context.Background()
	w.Input(ctx, "ab")
	w.Input(ctx, "   ")

	out.wait(t)
	assert.Nil(t, out.last())

	// Give the cancelled timer a chance to misfire if Cancel were broken.
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, gw.Queries())
}

func TestSearchErrorClearsResults(t *testing.T) {
	gw := &fakeGateway{err: assert.AnError}
	out := newSink()
	w := NewWidget(gw, 10*time.Millisecond, zaptest.NewLogger(t), out.push)
	defer w.Close()

	w.Input(context.Background(), "boom")
	out.wait(t)
	assert.Nil(t, out.last())
}

func TestCancelledContextSkipsQuery(t *testing.T) {
	gw := &fakeGateway{}
	out := newSink()
	w := NewWidget(gw, 20*time.Millisecond, zaptest.NewLogger(t), out.push)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	w.Input(ctx, "abc")
	cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, gw.Queries())
}

func TestDebouncerSeparateBursts(t *testing.T) {
	gw := &fakeGateway{}
	out := newSink()
	w := NewWidget(gw, 10*time.Millisecond, zaptest.NewLogger(t), out.push)
	defer w.Close()

	ctx := context.Background()
	w.Input(ctx, "first")
	out.wait(t)
	w.Input(ctx, "second")
	out.wait(t)

	assert.Equal(t, []string{"first", "second"}, gw.Queries())
}
