package review

import (
	"context"
	"errors"
	"testing"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeEntry struct {
	id     string
	status models.Status
	name   string
}

type fakeBackend struct {
	entries    []fakeEntry
	listCalls  int
	approved   []string
	rejections map[string]string
	fail       error
}

func newFakeBackend(entries ...fakeEntry) *fakeBackend {
	return &fakeBackend{entries: entries, rejections: map[string]string{}}
}

func (b *fakeBackend) kind() Kind[fakeEntry] {
	return Kind[fakeEntry]{
		Name: "fake",
		List: func(ctx context.Context) ([]fakeEntry, error) {
			b.listCalls++
			out := make([]fakeEntry, len(b.entries))
			copy(out, b.entries)
			return out, nil
		},
		Approve: func(ctx context.Context, id string) error {
			if b.fail != nil {
				return b.fail
			}
			b.approved = append(b.approved, id)
			for i := range b.entries {
				if b.entries[i].id == id {
					b.entries[i].status = models.StatusApproved
				}
			}
			return nil
		},
		Reject: func(ctx context.Context, id, reason string) error {
			if b.fail != nil {
				return b.fail
			}
			b.rejections[id] = reason
			for i := range b.entries {
				if b.entries[i].id == id {
					b.entries[i].status = models.StatusRejected
				}
			}
			return nil
		},
		ID:     func(e fakeEntry) string { return e.id },
		Status: func(e fakeEntry) models.Status { return e.status },
		Label:  func(e fakeEntry) string { return e.name },
	}
}

func TestSummaryCounts(t *testing.T) {
	backend := newFakeBackend(
		fakeEntry{id: "1", status: models.StatusPending},
		fakeEntry{id: "2", status: models.StatusPending},
		fakeEntry{id: "3", status: models.StatusApproved},
		fakeEntry{id: "4", status: models.StatusRejected},
	)
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	assert.Equal(t, Summary{Total: 4, Pending: 2, Approved: 1}, queue.Summary())
}

func TestApproveRefetchesList(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusPending, name: "Candle Co"})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	require.NoError(t, queue.Approve(context.Background(), "1", Confirmed))

	assert.Equal(t, []string{"1"}, backend.approved)
	assert.Equal(t, 2, backend.listCalls)
	item, ok := queue.Get("1")
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, item.status)
}

func TestApprovePassesLabelToConfirmer(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusPending, name: "Candle Co"})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	var prompt string
	err := queue.Approve(context.Background(), "1", ConfirmerFunc(func(p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, err)
	assert.Contains(t, prompt, `"Candle Co"`)
}

func TestApproveDeclined(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusPending})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	err := queue.Approve(context.Background(), "1", ConfirmerFunc(func(string) bool { return false }))
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, backend.approved)
}

func TestApproveNotPending(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusApproved})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	err := queue.Approve(context.Background(), "1", Confirmed)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Empty(t, backend.approved)
}

func TestApproveNotFound(t *testing.T) {
	backend := newFakeBackend()
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	err := queue.Approve(context.Background(), "missing", Confirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectEmptyReasonGoesThrough(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusPending})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	require.NoError(t, queue.Reject(context.Background(), "1", ""))

	reason, ok := backend.rejections["1"]
	require.True(t, ok)
	assert.Equal(t, "", reason)
}

func TestRejectNotPending(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusRejected})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))

	err := queue.Reject(context.Background(), "1", "late")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Empty(t, backend.rejections)
}

func TestApproveFailureLeavesListUntouched(t *testing.T) {
	backend := newFakeBackend(fakeEntry{id: "1", status: models.StatusPending})
	queue := NewQueue(backend.kind(), zaptest.NewLogger(t))
	require.NoError(t, queue.Refresh(context.Background()))
	backend.fail = errors.New("backend down")

	err := queue.Approve(context.Background(), "1", Confirmed)
	require.Error(t, err)

	assert.Equal(t, 1, backend.listCalls)
	item, ok := queue.Get("1")
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, item.status)
}
