// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	userEmailKey = "user_email"
	userRolesKey = "user_roles"
)

// SessionUser is the requester identity cached in the session and injected
// into r.Context(). Handlers that act on "the current user" (profile picture
// upload) read it via CurrentUser.
type SessionUser struct {
	ID    string
	Email string
	Roles []string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// Manager wraps the cookie session store. Login/logout flows live outside
// this subsystem; the manager only loads and exposes the requester.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// NewManager builds a cookie-backed session manager. The key must be strong
// in production; secure toggles the Secure cookie attribute. Only the
// configured key is used, so sessions survive restarts and are shared
// across instances.
func NewManager(key, name, domain string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: name}
}

// CurrentUser returns the requester and a "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// LoadSessionUser injects the requester into context if they are signed in.
func (m *Manager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Email: getString(sess, userEmailKey),
			}
			if roles, ok := sess.Values[userRolesKey].([]string); ok {
				u.Roles = roles
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn answers 401 with a JSON body when no requester is in
// context. It guards the endpoints that need an identity (profile picture).
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"sign-in required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithTestUser injects a requester directly into the request context.
// Test-only escape hatch; production requests go through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(sess *sessions.Session, key string) string {
	s, _ := sess.Values[key].(string)
	return s
}
