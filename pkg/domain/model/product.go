package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateProduct  = errors.New("product with this UPC already exists")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
)

// Product is something we sell, identified by its universal product code.
type Product struct {
	UPC          string
	Name         string
	ListPrice    decimal.Decimal
	UnitsInStock int
}

func (p Product) String() string {
	return fmt.Sprintf("%s  %s  $%s  %d in stock",
		p.UPC, p.Name, p.ListPrice.StringFixed(2), p.UnitsInStock)
}

type ProductRepository interface {
	Add(product *Product) error
	Find(upc string) (*Product, error)
	FindAll() ([]Product, error)
	// AdjustStock applies delta to the product's units in stock as a
	// single conditional update and returns ErrInsufficientStock when
	// the result would drop below zero.
	AdjustStock(upc string, delta int) error
}
