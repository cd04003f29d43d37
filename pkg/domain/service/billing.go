package service

import (
	"github.com/shopspring/decimal"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

// BillLine is one receipt row.
type BillLine struct {
	UPC      string
	Name     string
	UnitCost decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal
}

type Bill struct {
	Lines []BillLine
	Total decimal.Decimal
}

type BillingService interface {
	// BillFor re-reads the persisted lines of the order and totals them.
	// Reading has no side effects on the order or the stock.
	BillFor(order *model.Order) (*Bill, error)
}

func NewBillingService(orders model.OrderRepository, products model.ProductRepository) BillingService {
	return &billingService{orders: orders, products: products}
}

type billingService struct {
	orders   model.OrderRepository
	products model.ProductRepository
}

func (s *billingService) BillFor(order *model.Order) (*Bill, error) {
	lines, err := s.orders.LinesOf(order)
	if err != nil {
		return nil, err
	}

	bill := &Bill{Total: decimal.Zero}
	for _, line := range lines {
		product, err := s.products.Find(line.UPC)
		if err != nil {
			return nil, err
		}

		subtotal := line.Subtotal()
		bill.Lines = append(bill.Lines, BillLine{
			UPC:      line.UPC,
			Name:     product.Name,
			UnitCost: line.UnitSalePrice,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		bill.Total = bill.Total.Add(subtotal)
	}
	return bill, nil
}
