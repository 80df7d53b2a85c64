package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chris/amc-warranty-claims/pkg/handlers/respond"
)

// Identity headers set by the upstream auth gateway.
const (
	UserHeader  = "X-User-ID"
	AdminHeader = "X-Admin-ID"
)

type ctxKey int

const (
	userKey ctxKey = iota
	adminKey
)

// RequireUser rejects requests without a user identity and stores it in the context.
func RequireUser(next http.Handler) http.Handler {
	return requireHeader(UserHeader, userKey, next)
}

// RequireAdmin rejects requests without an admin identity and stores it in the context.
func RequireAdmin(next http.Handler) http.Handler {
	return requireHeader(AdminHeader, adminKey, next)
}

func requireHeader(header string, key ctxKey, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(header))
		if id == "" {
			respond.Unauthorized(w, "missing "+header+" header")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, id)))
	})
}

// UserID returns the identity stored by RequireUser.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey).(string)
	return id
}

// AdminID returns the identity stored by RequireAdmin.
func AdminID(ctx context.Context) string {
	id, _ := ctx.Value(adminKey).(string)
	return id
}
