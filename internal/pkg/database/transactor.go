package database

import "context"

// Transactor runs fn atomically. Repository calls made with the ctx handed to
// fn join the same transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
