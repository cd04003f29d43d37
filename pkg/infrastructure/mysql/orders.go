package mysql

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

type orderRepository struct {
	q sqlx.Ext
}

type orderLineRow struct {
	CustomerID    string          `db:"customer_id"`
	OrderDate     time.Time       `db:"order_date"`
	UPC           string          `db:"upc"`
	Quantity      int             `db:"quantity"`
	UnitSalePrice decimal.Decimal `db:"unit_sale_price"`
}

func (r *orderRepository) Add(order *model.Order) error {
	const query = `
		INSERT INTO orders (customer_id, order_date, sold_by)
		VALUES (?, ?, ?)`
	_, err := r.q.Exec(query,
		order.CustomerID.String(), order.PlacedAt, order.SalesPerson)
	if isDuplicateKey(err) {
		return model.ErrDuplicateOrder
	}
	return errors.Wrap(err, "insert order")
}

func (r *orderRepository) AddLine(line *model.OrderLine) error {
	const query = `
		INSERT INTO order_lines (customer_id, order_date, upc, quantity, unit_sale_price)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		line.CustomerID.String(), line.PlacedAt, line.UPC,
		line.Quantity, line.UnitSalePrice)
	if isDuplicateKey(err) {
		return model.ErrDuplicateOrderLine
	}
	return errors.Wrap(err, "insert order line")
}

func (r *orderRepository) LinesOf(order *model.Order) ([]model.OrderLine, error) {
	const query = `
		SELECT customer_id, order_date, upc, quantity, unit_sale_price
		FROM order_lines
		WHERE customer_id = ? AND order_date = ?
		ORDER BY upc`
	var rows []orderLineRow
	if err := sqlx.Select(r.q, &rows, query, order.CustomerID.String(), order.PlacedAt); err != nil {
		return nil, errors.Wrap(err, "select order lines")
	}

	lines := make([]model.OrderLine, 0, len(rows))
	for _, row := range rows {
		customerID, err := uuid.Parse(row.CustomerID)
		if err != nil {
			return nil, errors.Wrap(err, "parse customer id")
		}
		lines = append(lines, model.OrderLine{
			CustomerID:    customerID,
			PlacedAt:      row.OrderDate,
			UPC:           row.UPC,
			Quantity:      row.Quantity,
			UnitSalePrice: row.UnitSalePrice,
		})
	}
	return lines, nil
}
