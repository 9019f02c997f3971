package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/campuslex/campuslex/internal/platform/httpx"
	"github.com/campuslex/campuslex/internal/shared"
)

// Middleware wires the bearer-token authorization pipeline for HTTP handlers.
type Middleware struct {
	Service *Service
	Codec   TokenCodec
	Logger  *slog.Logger
}

// Authenticate extracts the bearer token, verifies it, resolves the principal
// it names, and stores the principal in the request context. Every failure
// mode answers 401 with the same detail so callers learn nothing about which
// step rejected them.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		claims, err := m.Codec.Parse(token)
		if err != nil {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		if claims.Subject == "" || claims.Kind == "" {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		principal, err := m.Service.Resolve(r.Context(), claims.Subject, shared.Kind(claims.Kind))
		if err != nil {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		ctx := shared.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates admin-only operations. Authenticated non-admin callers
// receive 400 "Not an admin user".
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := shared.PrincipalFromContext(r.Context())
		if principal == nil {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		if principal.Kind != shared.KindAdmin {
			httpx.RespondError(w, shared.ErrNotAdmin)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStudent gates enrollment-mutating operations to student principals.
func (m Middleware) RequireStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := shared.PrincipalFromContext(r.Context())
		if principal == nil {
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		if principal.Kind != shared.KindStudent {
			httpx.RespondError(w, shared.ErrNotStudent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
