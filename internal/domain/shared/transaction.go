package shared

import "context"

// TransactionManager runs a function inside a single storage
// transaction. Repository calls made with the context passed to fn join
// that transaction; when fn returns an error, every write made through
// it is rolled back.
type TransactionManager interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}
