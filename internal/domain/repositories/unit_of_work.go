package repositories

import "context"

// UnitOfWork runs fn inside a single transaction. Repository calls made
// with the ctx passed to fn share that transaction; any error returned by
// fn rolls the whole thing back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
