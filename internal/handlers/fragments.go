package handlers

import (
	"net/http"
	"strings"

	"github.com/aldric144/blkxchange-frontend-new/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchFragment serves the global search overlay. The template debounces
// keystrokes browser-side (keyup changed delay:300ms), so each request here is
// one committed query. Empty input renders the empty state without touching
// the backend.
func (h *Handler) SearchFragment(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := map[string]interface{}{"Query": query}
	if query == "" {
		data["Results"] = []models.SearchResult{}
		h.render(w, "search_results.html", data)
		return
	}

	results, err := h.Gateway.Search(r.Context(), query)
	if err != nil {
		h.Log.Error("search failed", zap.String("query", query), zap.Error(err))
		results = []models.SearchResult{}
	}
	data["Results"] = results
	h.render(w, "search_results.html", data)
}

// NotificationsFragment renders the bell panel. The page re-requests it every
// poll interval, so each render is a fresh fetch; the unread badge is derived
// from the fetched list here, never requested separately.
func (h *Handler) NotificationsFragment(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{}

	items, err := h.Gateway.ListNotifications(r.Context())
	if err != nil {
		h.Log.Error("fetch notifications failed", zap.Error(err))
		data["LoadError"] = true
		items = []models.Notification{}
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	data["Notifications"] = items
	data["Unread"] = unread
	h.render(w, "notifications.html", data)
}

// Mutations re-render the fragment afterwards, which re-fetches the list, so
// the panel always reconciles with the backend instead of trusting the
// optimistic patch.

func (h *Handler) NotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Gateway.MarkNotificationRead(r.Context(), id); err != nil {
		h.Log.Error("mark read failed", zap.String("id", id), zap.Error(err))
	}
	h.NotificationsFragment(w, r)
}

func (h *Handler) NotificationsReadAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Gateway.MarkAllNotificationsRead(r.Context()); err != nil {
		h.Log.Error("mark all read failed", zap.Error(err))
	}
	h.NotificationsFragment(w, r)
}

func (h *Handler) NotificationDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Gateway.DeleteNotification(r.Context(), id); err != nil {
		h.Log.Error("delete notification failed", zap.String("id", id), zap.Error(err))
	}
	h.NotificationsFragment(w, r)
}
