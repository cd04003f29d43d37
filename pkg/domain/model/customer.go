package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateCustomer = errors.New("customer with this name and phone already exists")
)

// Customer is a person who has, or might, order products from us.
// Identified by a surrogate key; (LastName, FirstName, Phone) must be
// unique across all customers.
type Customer struct {
	ID        uuid.UUID
	LastName  string
	FirstName string
	Street    string
	Zip       string
	Phone     string
}

func (c Customer) String() string {
	return fmt.Sprintf("%s  %s, %s  %s %s  %s",
		c.ID, c.LastName, c.FirstName, c.Street, c.Zip, c.Phone)
}

type CustomerRepository interface {
	NextID() (uuid.UUID, error)
	// Add returns ErrDuplicateCustomer when the (last, first, phone)
	// triple is already registered.
	Add(customer *Customer) error
	Find(id uuid.UUID) (*Customer, error)
	FindAll() ([]Customer, error)
}
