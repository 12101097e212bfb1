package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/middleware"
	"github.com/aldric144/blkxchange-frontend-new/internal/review"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminUnlockPage is the blocking step before any review view: the admin
// cannot reach the queues without answering it.
func (h *Handler) AdminUnlockPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin_unlock.html", map[string]interface{}{
		"Next": safeNext(r.URL.Query().Get("next")),
	})
}

func (h *Handler) AdminUnlockSubmit(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	// Whatever was entered is stored, empty included. A wrong secret shows up
	// as an unauthorized error on the next listing, not here.
	session.Values[middleware.SessionSecretKey] = r.FormValue("secret")
	session.Save(r, w)

	http.Redirect(w, r, safeNext(r.FormValue("next")), http.StatusSeeOther)
}

// AdminLock clears the stored secret so the unlock form asks again. Linked
// from the unauthorized banner.
func (h *Handler) AdminLock(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	delete(session.Values, middleware.SessionSecretKey)
	session.Save(r, w)

	http.Redirect(w, r, "/admin/unlock", http.StatusSeeOther)
}

func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin/vendors"
	}
	return next
}

func (h *Handler) AdminVendorsPage(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	renderReviewPage(h, w, r, review.VendorApplications(h.Gateway, secret), "admin_vendors.html")
}

func (h *Handler) AdminVendorApprove(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	handleReviewAction(h, w, r, review.VendorApplications(h.Gateway, secret), actionApprove, "/admin/vendors")
}

func (h *Handler) AdminVendorReject(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	handleReviewAction(h, w, r, review.VendorApplications(h.Gateway, secret), actionReject, "/admin/vendors")
}

func (h *Handler) AdminProductsPage(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	renderReviewPage(h, w, r, review.ProductSubmissions(h.Gateway, secret), "admin_products.html")
}

func (h *Handler) AdminProductApprove(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	handleReviewAction(h, w, r, review.ProductSubmissions(h.Gateway, secret), actionApprove, "/admin/products")
}

func (h *Handler) AdminProductReject(w http.ResponseWriter, r *http.Request) {
	secret, _ := middleware.AdminSecret(h.Store, r)
	handleReviewAction(h, w, r, review.ProductSubmissions(h.Gateway, secret), actionReject, "/admin/products")
}

const (
	actionApprove = "approve"
	actionReject  = "reject"
)

// renderReviewPage is the one list/detail renderer behind both admin views.
// Handler methods cannot take type parameters, so the generic body lives in
// free functions and the methods above stay one line each.
func renderReviewPage[T any](h *Handler, w http.ResponseWriter, r *http.Request, kind review.Kind[T], tmplName string) {
	queue := review.NewQueue(kind, h.Log)
	data := map[string]interface{}{}

	if err := queue.Refresh(r.Context()); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			h.Log.Warn("admin listing unauthorized", zap.String("kind", kind.Name))
			data["Unauthorized"] = true
		} else {
			h.Log.Error("admin listing failed", zap.String("kind", kind.Name), zap.Error(err))
			data["LoadError"] = true
		}
		h.render(w, tmplName, data)
		return
	}

	data["Summary"] = queue.Summary()
	data["Items"] = queue.Items()
	if id := r.URL.Query().Get("id"); id != "" {
		if item, ok := queue.Get(id); ok {
			data["Selected"] = item
		}
	}
	h.render(w, tmplName, data)
}

func handleReviewAction[T any](h *Handler, w http.ResponseWriter, r *http.Request, kind review.Kind[T], action, listPath string) {
	id := chi.URLParam(r, "id")
	queue := review.NewQueue(kind, h.Log)

	if err := queue.Refresh(r.Context()); err != nil {
		h.Log.Error("refresh before action failed", zap.String("kind", kind.Name), zap.Error(err))
		h.formError(w, "#action-error", apiDetail(err, "Action failed. Please try again."))
		return
	}

	var err error
	switch action {
	case actionApprove:
		// The browser dialog answered the confirmation before this POST.
		err = queue.Approve(r.Context(), id, review.Confirmed)
	case actionReject:
		// Empty reason is fine; the rejection still goes out.
		err = queue.Reject(r.Context(), id, r.FormValue("reason"))
	}
	if err != nil {
		h.Log.Error("review action failed",
			zap.String("kind", kind.Name),
			zap.String("action", action),
			zap.String("id", id),
			zap.Error(err))
		switch {
		case errors.Is(err, review.ErrNotPending):
			h.formError(w, "#action-error", "This entry has already been resolved.")
		case errors.Is(err, review.ErrNotFound):
			h.formError(w, "#action-error", "Entry not found. It may have been removed.")
		default:
			h.formError(w, "#action-error", apiDetail(err, "Action failed. Please try again."))
		}
		return
	}

	w.Header().Set("HX-Redirect", listPath)
	w.WriteHeader(http.StatusOK)
}
