// Package repository implements the record repositories over a ports.Store.
//
// Repositories are stateless: each call loads the whole collection, so any
// number of repository values may share one store.
package repository

import (
	"context"
	"time"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

// Option customises a repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to stamp joined and date fields.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) today() string {
	return domain.FormatDate(o.now())
}

// resolveUserName returns the user's display name, or domain.UnknownUserName
// when the id does not resolve.
func resolveUserName(ctx context.Context, users ports.UserRepository, id int) string {
	if u, ok := users.Get(ctx, id); ok {
		return u.Name
	}
	return domain.UnknownUserName
}
