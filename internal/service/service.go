package service

import "context"

// Transactor runs a function as one atomic unit: reads, aggregate mutation,
// writes and event emission either all commit or all roll back. The Postgres
// implementation carries the open transaction in the context so repositories
// join it transparently.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactor runs the function without any transactional scope. Useful for
// read-only paths and tests.
type NopTransactor struct{}

func (NopTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
