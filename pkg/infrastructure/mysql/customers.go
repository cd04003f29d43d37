package mysql

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

type customerRepository struct {
	q sqlx.Ext
}

type customerRow struct {
	ID        string `db:"customer_id"`
	LastName  string `db:"last_name"`
	FirstName string `db:"first_name"`
	Street    string `db:"street"`
	Zip       string `db:"zip"`
	Phone     string `db:"phone"`
}

func (r customerRow) toModel() (model.Customer, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Customer{}, errors.Wrap(err, "parse customer id")
	}
	return model.Customer{
		ID:        id,
		LastName:  r.LastName,
		FirstName: r.FirstName,
		Street:    r.Street,
		Zip:       r.Zip,
		Phone:     r.Phone,
	}, nil
}

func (r *customerRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *customerRepository) Add(customer *model.Customer) error {
	const query = `
		INSERT INTO customers (customer_id, last_name, first_name, street, zip, phone)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		customer.ID.String(), customer.LastName, customer.FirstName,
		customer.Street, customer.Zip, customer.Phone)
	if isDuplicateKey(err) {
		return model.ErrDuplicateCustomer
	}
	return errors.Wrap(err, "insert customer")
}

func (r *customerRepository) Find(id uuid.UUID) (*model.Customer, error) {
	const query = `
		SELECT customer_id, last_name, first_name, street, zip, phone
		FROM customers
		WHERE customer_id = ?`
	var row customerRow
	if err := sqlx.Get(r.q, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, errors.Wrap(err, "select customer")
	}
	customer, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindAll() ([]model.Customer, error) {
	const query = `
		SELECT customer_id, last_name, first_name, street, zip, phone
		FROM customers
		ORDER BY last_name, first_name`
	var rows []customerRow
	if err := sqlx.Select(r.q, &rows, query); err != nil {
		return nil, errors.Wrap(err, "select customers")
	}
	customers := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		customer, err := row.toModel()
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
