package mw

import (
	"context"
	"net/http"
	"strings"
)

// AccessMode selects which named partition an operation targets.
// Authentication itself happens upstream; by the time a request gets
// here the mode headers are trusted.
type AccessMode string

const (
	ModeAdmin  AccessMode = "admin"
	ModeGuest  AccessMode = "guest"
	ModePublic AccessMode = "public"
)

type ctxKey int

const (
	modeKey ctxKey = iota
	usernameKey
	sessionKey
)

// Mode resolves the access mode, username and session id from request
// headers into the request context. Unknown or missing modes degrade to
// public, which never touches the remote store.
func Mode() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mode := ModePublic
			switch strings.ToLower(r.Header.Get("X-Access-Mode")) {
			case "admin":
				mode = ModeAdmin
			case "guest":
				mode = ModeGuest
			}

			session := r.Header.Get("X-Session-ID")
			if session == "" {
				session = "anonymous"
			}

			ctx := context.WithValue(r.Context(), modeKey, mode)
			ctx = context.WithValue(ctx, usernameKey, r.Header.Get("X-Username"))
			ctx = context.WithValue(ctx, sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ModeFrom returns the access mode stored by Mode.
func ModeFrom(ctx context.Context) AccessMode {
	if m, ok := ctx.Value(modeKey).(AccessMode); ok {
		return m
	}
	return ModePublic
}

// UsernameFrom returns the guest username, possibly empty.
func UsernameFrom(ctx context.Context) string {
	if u, ok := ctx.Value(usernameKey).(string); ok {
		return u
	}
	return ""
}

// SessionFrom returns the session id, never empty.
func SessionFrom(ctx context.Context) string {
	if s, ok := ctx.Value(sessionKey).(string); ok && s != "" {
		return s
	}
	return "anonymous"
}
