package service

import (
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

// addLines runs the line-item loop of an open order: select a product,
// settle on a quantity against live stock, persist the line and take
// the stock. Returns cancelled=true when the user chose to cancel the
// whole order; the caller owns the rollback.
func (s *placementService) addLines(uow model.UnitOfWork, order *model.Order) (cancelled bool, err error) {
	for {
		product, err := s.selectProduct(uow.Products())
		if err != nil {
			return false, err
		}
		if product == nil {
			return false, nil
		}

		quantity, err := s.promptQuantity()
		if err != nil {
			return false, err
		}

		if quantity > product.UnitsInStock {
			choice, err := s.resolveOverstock()
			if err != nil {
				return false, err
			}
			switch choice {
			case buyRemainingStock:
				quantity = product.UnitsInStock
			case dropProduct:
				continue
			case cancelOrder:
				s.console.Display("Order cancelled.")
				return true, nil
			}
		}
		if quantity == 0 {
			s.console.Display("Product is out of stock, removed from the order.")
			continue
		}

		line := &model.OrderLine{
			CustomerID:    order.CustomerID,
			PlacedAt:      order.PlacedAt,
			UPC:           product.UPC,
			Quantity:      quantity,
			UnitSalePrice: product.ListPrice,
		}
		if err := uow.Orders().AddLine(line); err != nil {
			if errors.Is(err, model.ErrDuplicateOrderLine) {
				s.console.Display("This product is already on the order.")
				continue
			}
			return false, err
		}
		// The line insert and the stock decrement are one inseparable
		// step; a failure here leaves the order inconsistent and the
		// caller must roll back.
		if err := uow.Products().AdjustStock(product.UPC, -quantity); err != nil {
			return false, err
		}
		s.log.WithFields(log.Fields{"upc": product.UPC, "quantity": quantity}).Info("added order line")
	}
}

// selectProduct lists the catalog and reads a UPC. Blank input ends the
// order (nil, nil); an unknown UPC re-prompts.
func (s *placementService) selectProduct(products model.ProductRepository) (*model.Product, error) {
	for {
		all, err := products.FindAll()
		if err != nil {
			return nil, err
		}

		s.console.Display("Which product would you like? Select the desired from the following products:")
		for _, product := range all {
			s.console.Display("\t" + product.String())
		}

		upc, err := s.console.Prompt("Type your product UPC here (leave blank to end order):")
		if err != nil {
			return nil, err
		}
		if upc == "" {
			return nil, nil
		}

		product, err := products.Find(upc)
		if err == nil {
			s.console.Display("You have selected:\n\t" + product.String())
			return product, nil
		}
		if !errors.Is(err, model.ErrProductNotFound) {
			return nil, err
		}
		s.console.Display("Invalid product UPC! Try again.")
	}
}

func (s *placementService) promptQuantity() (int, error) {
	for {
		input, err := s.console.Prompt("Please enter the quantity desired:")
		if err != nil {
			return 0, err
		}
		quantity, err := strconv.Atoi(input)
		if err == nil && quantity > 0 {
			return quantity, nil
		}
		s.console.Display("Invalid quantity, has to be greater than 0")
	}
}

type overstockChoice int

const (
	buyRemainingStock overstockChoice = iota
	dropProduct
	cancelOrder
)

// resolveOverstock offers the three ways out of a desired quantity that
// exceeds stock.
func (s *placementService) resolveOverstock() (overstockChoice, error) {
	for {
		s.console.Display("Quantity entered is greater than amount left in stock. Your options are:")
		s.console.Display("\t1. Buy whatever remaining stock is left.")
		s.console.Display("\t2. Remove this product from the order.")
		s.console.Display("\t3. Cancel this order.")
		choice, err := s.console.Prompt("Please choose an option:")
		if err != nil {
			return 0, err
		}
		switch choice {
		case "1":
			return buyRemainingStock, nil
		case "2":
			return dropProduct, nil
		case "3":
			return cancelOrder, nil
		}
		s.console.Display("Error. Please enter 1, 2, or 3.")
	}
}
