package tests

import (
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

// scriptedConsole feeds a fixed input script to the workflow and keeps
// everything it printed for assertions.
type scriptedConsole struct {
	inputs []string
	output []string
}

func newScriptedConsole(inputs ...string) *scriptedConsole {
	return &scriptedConsole{inputs: inputs}
}

func (c *scriptedConsole) Prompt(text string) (string, error) {
	c.output = append(c.output, text)
	if len(c.inputs) == 0 {
		return "", io.EOF
	}
	line := c.inputs[0]
	c.inputs = c.inputs[1:]
	return line, nil
}

func (c *scriptedConsole) Display(text string) {
	c.output = append(c.output, text)
}

func (c *scriptedConsole) saw(text string) bool {
	for _, line := range c.output {
		if strings.Contains(line, text) {
			return true
		}
	}
	return false
}

// memoryStore implements model.Store in memory. Begin snapshots the
// transactional state (products, orders, lines) and Rollback restores
// it, so the atomicity of the workflow is observable from tests.
// Customer writes are autocommit, as in the real store.
type memoryStore struct {
	customers map[uuid.UUID]model.Customer
	products  map[string]model.Product
	orders    []model.Order
	lines     []model.OrderLine
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		customers: make(map[uuid.UUID]model.Customer),
		products:  make(map[string]model.Product),
	}
}

var _ model.Store = &memoryStore{}

func (s *memoryStore) Customers() model.CustomerRepository { return &memoryCustomers{store: s} }
func (s *memoryStore) Products() model.ProductRepository   { return &memoryProducts{store: s} }

func (s *memoryStore) Begin() (model.UnitOfWork, error) {
	return &memoryUnitOfWork{store: s, snapshot: s.snapshot()}, nil
}

type txSnapshot struct {
	products map[string]model.Product
	orders   []model.Order
	lines    []model.OrderLine
}

func (s *memoryStore) snapshot() txSnapshot {
	products := make(map[string]model.Product, len(s.products))
	for upc, product := range s.products {
		products[upc] = product
	}
	return txSnapshot{
		products: products,
		orders:   append([]model.Order(nil), s.orders...),
		lines:    append([]model.OrderLine(nil), s.lines...),
	}
}

type memoryUnitOfWork struct {
	store    *memoryStore
	snapshot txSnapshot
}

func (u *memoryUnitOfWork) Products() model.ProductRepository { return &memoryProducts{store: u.store} }
func (u *memoryUnitOfWork) Orders() model.OrderRepository     { return &memoryOrders{store: u.store} }

func (u *memoryUnitOfWork) Commit() error {
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	u.store.products = u.snapshot.products
	u.store.orders = u.snapshot.orders
	u.store.lines = u.snapshot.lines
	return nil
}

type memoryCustomers struct {
	store *memoryStore
}

func (m *memoryCustomers) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (m *memoryCustomers) Add(customer *model.Customer) error {
	for _, existing := range m.store.customers {
		if existing.LastName == customer.LastName &&
			existing.FirstName == customer.FirstName &&
			existing.Phone == customer.Phone {
			return model.ErrDuplicateCustomer
		}
	}
	m.store.customers[customer.ID] = *customer
	return nil
}

func (m *memoryCustomers) Find(id uuid.UUID) (*model.Customer, error) {
	customer, ok := m.store.customers[id]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	return &customer, nil
}

func (m *memoryCustomers) FindAll() ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(m.store.customers))
	for _, customer := range m.store.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].LastName < customers[j].LastName
	})
	return customers, nil
}

type memoryProducts struct {
	store *memoryStore
}

func (m *memoryProducts) Add(product *model.Product) error {
	if _, exists := m.store.products[product.UPC]; exists {
		return model.ErrDuplicateProduct
	}
	m.store.products[product.UPC] = *product
	return nil
}

func (m *memoryProducts) Find(upc string) (*model.Product, error) {
	product, ok := m.store.products[upc]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return &product, nil
}

func (m *memoryProducts) FindAll() ([]model.Product, error) {
	products := make([]model.Product, 0, len(m.store.products))
	for _, product := range m.store.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].UPC < products[j].UPC
	})
	return products, nil
}

func (m *memoryProducts) AdjustStock(upc string, delta int) error {
	product, ok := m.store.products[upc]
	if !ok {
		return model.ErrProductNotFound
	}
	if product.UnitsInStock+delta < 0 {
		return model.ErrInsufficientStock
	}
	product.UnitsInStock += delta
	m.store.products[upc] = product
	return nil
}

type memoryOrders struct {
	store *memoryStore
}

func (m *memoryOrders) Add(order *model.Order) error {
	for _, existing := range m.store.orders {
		if existing.CustomerID == order.CustomerID && existing.PlacedAt.Equal(order.PlacedAt) {
			return model.ErrDuplicateOrder
		}
	}
	m.store.orders = append(m.store.orders, *order)
	return nil
}

func (m *memoryOrders) AddLine(line *model.OrderLine) error {
	for _, existing := range m.store.lines {
		if existing.CustomerID == line.CustomerID &&
			existing.PlacedAt.Equal(line.PlacedAt) &&
			existing.UPC == line.UPC {
			return model.ErrDuplicateOrderLine
		}
	}
	m.store.lines = append(m.store.lines, *line)
	return nil
}

func (m *memoryOrders) LinesOf(order *model.Order) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for _, line := range m.store.lines {
		if line.CustomerID == order.CustomerID && line.PlacedAt.Equal(order.PlacedAt) {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
