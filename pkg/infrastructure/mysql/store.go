// Package mysql persists the order-entry model with sqlx over MySQL.
package mysql

import (
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn)
	return db, errors.Wrap(err, "connect to mysql")
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type Store struct {
	db *sqlx.DB
}

func (s *Store) Customers() model.CustomerRepository {
	return &customerRepository{q: s.db}
}

func (s *Store) Products() model.ProductRepository {
	return &productRepository{q: s.db}
}

// Begin opens the single transaction an order placement lives in.
func (s *Store) Begin() (model.UnitOfWork, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx *sqlx.Tx
}

func (u *unitOfWork) Products() model.ProductRepository {
	return &productRepository{q: u.tx}
}

func (u *unitOfWork) Orders() model.OrderRepository {
	return &orderRepository{q: u.tx}
}

func (u *unitOfWork) Commit() error {
	return errors.Wrap(u.tx.Commit(), "commit transaction")
}

func (u *unitOfWork) Rollback() error {
	return errors.Wrap(u.tx.Rollback(), "rollback transaction")
}

// MySQL error 1062: duplicate entry for a unique or primary key.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
