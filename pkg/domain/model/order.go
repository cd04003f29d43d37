package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateOrder     = errors.New("customer already has an order with this timestamp")
	ErrDuplicateOrderLine = errors.New("order already contains this product")
)

// Order is identified by the (customer, placement timestamp) pair; a
// customer cannot place two orders at the same instant.
type Order struct {
	CustomerID  uuid.UUID
	PlacedAt    time.Time
	SalesPerson string
}

// OrderLine is one product row of an order. At most one line per
// product per order. The unit sale price is captured at line creation
// and may differ from the product's later list price.
type OrderLine struct {
	CustomerID    uuid.UUID
	PlacedAt      time.Time
	UPC           string
	Quantity      int
	UnitSalePrice decimal.Decimal
}

// Subtotal is quantity times unit sale price.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitSalePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type OrderRepository interface {
	Add(order *Order) error
	// AddLine returns ErrDuplicateOrderLine when the order already has a
	// line for the same product.
	AddLine(line *OrderLine) error
	LinesOf(order *Order) ([]OrderLine, error)
}
