package sequence

import "context"

// Repository issues unique, monotonically increasing numbers from named durable
// counters. Next must be called inside an enclosing transaction: the counter row
// stays locked until that transaction commits or rolls back, so two concurrent
// callers can never receive the same value.
type Repository interface {
	Next(ctx context.Context, name string) (int64, error)
}
