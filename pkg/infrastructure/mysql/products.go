package mysql

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

type productRepository struct {
	q sqlx.Ext
}

type productRow struct {
	UPC          string          `db:"upc"`
	Name         string          `db:"prod_name"`
	ListPrice    decimal.Decimal `db:"unit_list_price"`
	UnitsInStock int             `db:"units_in_stock"`
}

func (r productRow) toModel() model.Product {
	return model.Product{
		UPC:          r.UPC,
		Name:         r.Name,
		ListPrice:    r.ListPrice,
		UnitsInStock: r.UnitsInStock,
	}
}

func (r *productRepository) Add(product *model.Product) error {
	const query = `
		INSERT INTO products (upc, prod_name, unit_list_price, units_in_stock)
		VALUES (?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		product.UPC, product.Name, product.ListPrice, product.UnitsInStock)
	if isDuplicateKey(err) {
		return model.ErrDuplicateProduct
	}
	return errors.Wrap(err, "insert product")
}

func (r *productRepository) Find(upc string) (*model.Product, error) {
	const query = `
		SELECT upc, prod_name, unit_list_price, units_in_stock
		FROM products
		WHERE upc = ?`
	var row productRow
	if err := sqlx.Get(r.q, &row, query, upc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, errors.Wrap(err, "select product")
	}
	product := row.toModel()
	return &product, nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	const query = `
		SELECT upc, prod_name, unit_list_price, units_in_stock
		FROM products
		ORDER BY upc`
	var rows []productRow
	if err := sqlx.Select(r.q, &rows, query); err != nil {
		return nil, errors.Wrap(err, "select products")
	}
	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, nil
}

// AdjustStock is a single conditional update so the stock count can
// never be driven below zero, even by a concurrent placement.
func (r *productRepository) AdjustStock(upc string, delta int) error {
	const query = `
		UPDATE products
		SET units_in_stock = units_in_stock + ?
		WHERE upc = ? AND units_in_stock + ? >= 0`
	result, err := r.q.Exec(query, delta, upc, delta)
	if err != nil {
		return errors.Wrap(err, "adjust stock")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "adjust stock")
	}
	if affected == 0 {
		if _, err := r.Find(upc); err != nil {
			return err
		}
		return model.ErrInsufficientStock
	}
	return nil
}
