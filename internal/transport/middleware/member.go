package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/pkg/logger"
)

// MemberResolver maps a member id to the acting identity; implemented by the
// household service.
type MemberResolver interface {
	ResolveMember(memberID string) (*internal.ActingMember, error)
}

// MemberContext resolves the X-Member-ID header to a household member and
// attaches it to the request context. Authentication proper happens upstream;
// this layer only scopes requests to a household.
func MemberContext(resolver MemberResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			memberID := r.Header.Get("X-Member-ID")
			if memberID == "" {
				writeUnauthorized(w, "X-Member-ID header required")
				return
			}

			member, err := resolver.ResolveMember(memberID)
			if err != nil {
				writeUnauthorized(w, "member not recognized")
				return
			}

			ctx := internal.ContextWithMember(r.Context(), member)
			ctx = logger.WithMember(ctx, member.ID, member.HouseholdID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
