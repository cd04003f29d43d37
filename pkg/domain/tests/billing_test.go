package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
	"github.com/blazeris/CustomerOrders/pkg/domain/service"
)

func TestBillForTotalsLines(t *testing.T) {
	order := &model.Order{CustomerID: uuid.New(), PlacedAt: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	orders := &mockOrders{lines: []model.OrderLine{
		{CustomerID: order.CustomerID, PlacedAt: order.PlacedAt, UPC: "UPC-001",
			Quantity: 3, UnitSalePrice: decimal.RequireFromString("10.00")},
		{CustomerID: order.CustomerID, PlacedAt: order.PlacedAt, UPC: "UPC-002",
			Quantity: 2, UnitSalePrice: decimal.RequireFromString("4.15")},
	}}
	products := &mockProducts{products: map[string]model.Product{
		"UPC-001": {UPC: "UPC-001", Name: "Widget"},
		"UPC-002": {UPC: "UPC-002", Name: "Legal Pad"},
	}}

	billing := service.NewBillingService(orders, products)
	bill, err := billing.BillFor(order)

	require.NoError(t, err)
	require.Len(t, bill.Lines, 2)
	assert.Equal(t, "Widget", bill.Lines[0].Name)
	assert.True(t, bill.Lines[0].Subtotal.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, bill.Lines[1].Subtotal.Equal(decimal.RequireFromString("8.30")))
	assert.True(t, bill.Total.Equal(decimal.RequireFromString("38.30")))
}

func TestBillForEmptyOrder(t *testing.T) {
	billing := service.NewBillingService(&mockOrders{}, &mockProducts{})

	bill, err := billing.BillFor(&model.Order{CustomerID: uuid.New(), PlacedAt: time.Now().UTC()})

	require.NoError(t, err)
	assert.Empty(t, bill.Lines)
	assert.True(t, bill.Total.IsZero())
}

func TestBillForReadIsIdempotent(t *testing.T) {
	order := &model.Order{CustomerID: uuid.New(), PlacedAt: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	orders := &mockOrders{lines: []model.OrderLine{
		{CustomerID: order.CustomerID, PlacedAt: order.PlacedAt, UPC: "UPC-001",
			Quantity: 1, UnitSalePrice: decimal.RequireFromString("2.50")},
	}}
	products := &mockProducts{products: map[string]model.Product{
		"UPC-001": {UPC: "UPC-001", Name: "Mechanical Pencil"},
	}}
	billing := service.NewBillingService(orders, products)

	first, err := billing.BillFor(order)
	require.NoError(t, err)
	second, err := billing.BillFor(order)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

var _ model.OrderRepository = &mockOrders{}

type mockOrders struct {
	lines []model.OrderLine
}

func (m *mockOrders) Add(order *model.Order) error {
	return nil
}

func (m *mockOrders) AddLine(line *model.OrderLine) error {
	m.lines = append(m.lines, *line)
	return nil
}

func (m *mockOrders) LinesOf(order *model.Order) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for _, line := range m.lines {
		if line.CustomerID == order.CustomerID && line.PlacedAt.Equal(order.PlacedAt) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

var _ model.ProductRepository = &mockProducts{}

type mockProducts struct {
	products map[string]model.Product
}

func (m *mockProducts) Add(product *model.Product) error {
	return nil
}

func (m *mockProducts) Find(upc string) (*model.Product, error) {
	product, ok := m.products[upc]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return &product, nil
}

func (m *mockProducts) FindAll() ([]model.Product, error) {
	return nil, nil
}

func (m *mockProducts) AdjustStock(upc string, delta int) error {
	return nil
}
