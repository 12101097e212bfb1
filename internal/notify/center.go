// Package notify keeps a loosely fresh local mirror of the notification list.
// The unread badge is always derived from the local list, never fetched on
// its own.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"go.uber.org/zap"
)

// Gateway is the slice of the API client the center needs.
type Gateway interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

type Center struct {
	gw       Gateway
	interval time.Duration
	log      *zap.Logger

	mu    sync.Mutex
	items []models.Notification
}

func NewCenter(gw Gateway, interval time.Duration, log *zap.Logger) *Center {
	return &Center{gw: gw, interval: interval, log: log}
}

// Run fetches once immediately, then on every tick until ctx is done. The
// ticker is released on exit; nothing touches the center after cancellation.
func (c *Center) Run(ctx context.Context) {
	c.Refresh(ctx)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

func (c *Center) Refresh(ctx context.Context) {
	items, err := c.gw.ListNotifications(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.log.Error("fetch notifications failed", zap.Error(err))
		}
		return
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *Center) List() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead patches the local list first so the badge updates immediately, then
// calls the backend. On failure the list is re-fetched to restore server
// truth; on success the next poll reconciles.
func (c *Center) MarkRead(ctx context.Context, id string) {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
		}
	}
	c.mu.Unlock()

	if err := c.gw.MarkNotificationRead(ctx, id); err != nil {
		c.log.Error("mark read failed", zap.String("id", id), zap.Error(err))
		c.Refresh(ctx)
	}
}

func (c *Center) MarkAllRead(ctx context.Context) {
	c.mu.Lock()
	for i := range c.items {
		c.items[i].Read = true
	}
	c.mu.Unlock()

	if err := c.gw.MarkAllNotificationsRead(ctx); err != nil {
		c.log.Error("mark all read failed", zap.Error(err))
		c.Refresh(ctx)
	}
}

func (c *Center) Delete(ctx context.Context, id string) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.items = kept
	c.mu.Unlock()

	if err := c.gw.DeleteNotification(ctx, id); err != nil {
		c.log.Error("delete notification failed", zap.String("id", id), zap.Error(err))
		c.Refresh(ctx)
	}
}
