package model

// UnitOfWork is one open transaction. Repositories obtained from it
// operate on that transaction and observe its uncommitted writes.
// Commit and Rollback are mutually exclusive terminal operations.
type UnitOfWork interface {
	Products() ProductRepository
	Orders() OrderRepository
	Commit() error
	Rollback() error
}

// Store is the persistence entry point. The repository accessors run in
// autocommit mode outside any workflow transaction; Begin opens the
// single unit of work an order placement lives in.
type Store interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Begin() (UnitOfWork, error)
}
