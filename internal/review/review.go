// Package review implements the admin list/detail/approve/reject workflow
// shared by vendor applications and product submissions. One generic queue
// replaces the two hand-duplicated flows the platform started with.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"go.uber.org/zap"
)

var (
	ErrNotFound   = errors.New("review: entity not found")
	ErrNotPending = errors.New("review: entity already resolved")
	ErrDeclined   = errors.New("review: action not confirmed")
)

// Confirmer answers the yes/no question before an approval goes out.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed is for callers whose confirmation already happened upstream, such
// as a browser dialog answered before the form was posted.
var Confirmed Confirmer = ConfirmerFunc(func(string) bool { return true })

// Kind describes one reviewable entity type. List must return the complete
// set; the queue never patches incrementally.
type Kind[T any] struct {
	Name    string
	List    func(ctx context.Context) ([]T, error)
	Approve func(ctx context.Context, id string) error
	Reject  func(ctx context.Context, id, reason string) error
	ID      func(T) string
	Status  func(T) models.Status
	Label   func(T) string
}

type Summary struct {
	Total    int
	Pending  int
	Approved int
}

// Queue is one admin's working copy of the review list. It holds no truth of
// its own; every action is followed by a full re-fetch from the backend.
type Queue[T any] struct {
	kind  Kind[T]
	items []T
	log   *zap.Logger
}

func NewQueue[T any](kind Kind[T], log *zap.Logger) *Queue[T] {
	return &Queue[T]{kind: kind, log: log}
}

func (q *Queue[T]) Refresh(ctx context.Context) error {
	items, err := q.kind.List(ctx)
	if err != nil {
		return err
	}
	q.items = items
	return nil
}

func (q *Queue[T]) Items() []T {
	return q.items
}

func (q *Queue[T]) Get(id string) (T, bool) {
	for _, item := range q.items {
		if q.kind.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (q *Queue[T]) Summary() Summary {
	var s Summary
	for _, item := range q.items {
		s.Total++
		switch q.kind.Status(item) {
		case models.StatusPending:
			s.Pending++
		case models.StatusApproved:
			s.Approved++
		}
	}
	return s
}

// Approve resolves a pending entity after confirmation. On success the whole
// list is re-fetched; on failure the local list is untouched so the detail
// view stays open for a retry.
func (q *Queue[T]) Approve(ctx context.Context, id string, confirm Confirmer) error {
	item, ok := q.Get(id)
	if !ok {
		return ErrNotFound
	}
	if q.kind.Status(item) != models.StatusPending {
		return ErrNotPending
	}
	if !confirm.Confirm(fmt.Sprintf("Are you sure you want to approve %q?", q.kind.Label(item))) {
		return ErrDeclined
	}
	if err := q.kind.Approve(ctx, id); err != nil {
		return err
	}
	q.log.Info("approved", zap.String("kind", q.kind.Name), zap.String("id", id))
	return q.Refresh(ctx)
}

// Reject resolves a pending entity. An empty reason is accepted and sent as-is.
func (q *Queue[T]) Reject(ctx context.Context, id, reason string) error {
	item, ok := q.Get(id)
	if !ok {
		return ErrNotFound
	}
	if q.kind.Status(item) != models.StatusPending {
		return ErrNotPending
	}
	if err := q.kind.Reject(ctx, id, reason); err != nil {
		return err
	}
	q.log.Info("rejected", zap.String("kind", q.kind.Name), zap.String("id", id))
	return q.Refresh(ctx)
}
