// Package search is the debounced cross-entity lookup widget. Keystrokes are
// coalesced so at most one query is in flight for the latest committed text.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"go.uber.org/zap"
)

// Debouncer runs at most one pending func, on the trailing edge of the delay.
// Each Trigger cancels the previous pending func and reschedules.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel stops any pending func. Must be called on teardown so the timer does
// not outlive its owner.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Gateway is the slice of the API client the widget needs.
type Gateway interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Widget feeds debounced queries to the gateway and pushes results to a sink.
// Clearing the query to empty clears results immediately with no network call.
type Widget struct {
	gw   Gateway
	deb  *Debouncer
	log  *zap.Logger
	sink func([]models.SearchResult)
}

func NewWidget(gw Gateway, delay time.Duration, log *zap.Logger, sink func([]models.SearchResult)) *Widget {
	return &Widget{
		gw:   gw,
		deb:  NewDebouncer(delay),
		log:  log,
		sink: sink,
	}
}

func (w *Widget) Input(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		w.deb.Cancel()
		w.sink(nil)
		return
	}
	w.deb.Trigger(func() {
		if ctx.Err() != nil {
			return
		}
		results, err := w.gw.Search(ctx, query)
		if err != nil {
			w.log.Error("search failed", zap.String("query", query), zap.Error(err))
			w.sink(nil)
			return
		}
		w.sink(results)
	})
}

func (w *Widget) Close() {
	w.deb.Cancel()
}
