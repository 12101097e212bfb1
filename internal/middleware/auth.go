package middleware

import (
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
)

const (
	SessionName      = "session"
	SessionSecretKey = "admin_secret"
)

// AdminSecret returns the secret stored in the admin's session. An empty
// stored secret is still a stored secret; the backend decides whether it is
// right.
func AdminSecret(store *sessions.CookieStore, r *http.Request) (string, bool) {
	session, _ := store.Get(r, SessionName)
	value, ok := session.Values[SessionSecretKey].(string)
	return value, ok
}

// RequireAdminSecret gates the admin review views. Without a stored secret the
// admin is sent to the unlock form, which blocks the flow until a password is
// entered.
func RequireAdminSecret(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := AdminSecret(store, r); !ok {
				http.Redirect(w, r, "/admin/unlock?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
