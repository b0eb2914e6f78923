package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// KeySession is the key for storing the authenticated session in context.
const KeySession ContextKey = "session"

// WithSession returns a new context carrying the authenticated session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSession returns the authenticated session, or nil for anonymous requests.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}
