package middleware

import "context"

type contextKey string

const ctxMemberID contextKey = "member_id"

// MemberIDFromContext returns the authenticated member, or false when the request
// never passed through Auth.
func MemberIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	v, ok := ctx.Value(ctxMemberID).(int64)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// WithMemberID injects the member identifier into the context.
func WithMemberID(ctx context.Context, memberID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxMemberID, memberID)
}
