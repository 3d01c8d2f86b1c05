package infra

import (
	"context"

	"gorm.io/gorm"
)

type sessionKey struct{}

// OpenSession runs fn with a unit-of-work pinned to one pooled connection.
// The connection goes back to the pool when fn returns, errors or panics.
func OpenSession(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		session := conn.Session(&gorm.Session{})
		return fn(context.WithValue(ctx, sessionKey{}, session))
	})
}

// SessionFromContext returns the unit-of-work opened by OpenSession, or false
// when ctx carries none.
func SessionFromContext(ctx context.Context) (*gorm.DB, bool) {
	session, ok := ctx.Value(sessionKey{}).(*gorm.DB)
	return session, ok
}

// DBFromContext prefers the request's unit-of-work and falls back to the pool.
func DBFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if session, ok := SessionFromContext(ctx); ok {
		return session
	}
	return db.WithContext(ctx)
}
