package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextMemberKey ctxKey = "member"

// ActingMember identifies the household member a request acts as. Resolving
// the header to a member row happens in middleware; authentication itself is
// delegated to the external identity layer.
type ActingMember struct {
	ID          string
	Name        string
	HouseholdID string
	PartnerID   string
}

func MemberFromContext(ctx context.Context) (*ActingMember, bool) {
	if ctx == nil {
		return nil, false
	}
	if m, ok := ctx.Value(ContextMemberKey).(*ActingMember); ok && m != nil {
		return m, true
	}
	return nil, false
}

func ContextWithMember(ctx context.Context, m *ActingMember) context.Context {
	return context.WithValue(ctx, ContextMemberKey, m)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
