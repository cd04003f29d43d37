package service

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
	"github.com/blazeris/CustomerOrders/pkg/domain/service"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Clock supplies the current instant; injected so order-date validation
// is testable.
type Clock func() time.Time

// PlacementService drives one order placement end to end: resolve the
// customer, open the order transaction, collect line items against
// stock, show the bill, and commit or roll back on the user's answer.
type PlacementService interface {
	PlaceOrder() error
}

func NewPlacementService(store model.Store, console Console, clock Clock, logger log.FieldLogger) PlacementService {
	return &placementService{
		store:    store,
		console:  console,
		clock:    clock,
		log:      logger,
		resolver: NewCustomerResolver(store, console, logger),
	}
}

type placementService struct {
	store    model.Store
	console  Console
	clock    Clock
	log      log.FieldLogger
	resolver CustomerResolver
}

// PlaceOrder holds exactly one transaction open from the order-header
// insert through the final commit or rollback. Every abort path rolls
// the whole transaction back; there is no partial commit of lines.
func (s *placementService) PlaceOrder() error {
	customer, err := s.resolver.Resolve()
	if err != nil {
		return err
	}

	placedAt, err := s.promptDateTime()
	if err != nil {
		return err
	}

	seller, err := s.console.Prompt("What is the name of the salesperson?")
	if err != nil {
		return err
	}

	order := &model.Order{
		CustomerID:  customer.ID,
		PlacedAt:    placedAt,
		SalesPerson: seller,
	}

	uow, err := s.store.Begin()
	if err != nil {
		return err
	}
	if err := uow.Orders().Add(order); err != nil {
		_ = uow.Rollback()
		return err
	}

	cancelled, err := s.addLines(uow, order)
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if cancelled {
		if err := uow.Rollback(); err != nil {
			return err
		}
		s.log.WithFields(log.Fields{"customer": order.CustomerID}).Info("order cancelled by customer")
		return nil
	}

	billing := service.NewBillingService(uow.Orders(), uow.Products())
	bill, err := billing.BillFor(order)
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	s.printBill(bill)

	return s.confirm(uow, order)
}

// promptDateTime reads the order timestamp. Blank means now; an
// explicit date and time must parse and be strictly before the current
// instant. Timestamps are truncated to the second for the store.
func (s *placementService) promptDateTime() (time.Time, error) {
	for {
		now := s.clock().UTC().Truncate(time.Second)

		date, err := s.console.Prompt("What date was the order placed (year-month-date)? Leave blank if you want to place it right now:\nEnsure single digits have a 0 in front i.e 2022-04-07")
		if err != nil {
			return time.Time{}, err
		}
		if date == "" {
			return now, nil
		}

		timeOfDay, err := s.console.Prompt("What time was the order placed (hour:minutes)?:\nEnsure single digits have a 0 in front i.e 07:03")
		if err != nil {
			return time.Time{}, err
		}

		placedAt, err := time.Parse(dateTimeLayout, date+" "+timeOfDay)
		if err != nil {
			s.console.Display("Invalid format.")
		} else if placedAt.Before(now) {
			s.console.Display(fmt.Sprintf("You have selected:\n\t%s\t%s",
				placedAt.Format(dateLayout), placedAt.Format("15:04:05")))
			return placedAt, nil
		}
		s.console.Display("Invalid date time! Ensure your selected date and time is before the present. Try again.")
	}
}

func (s *placementService) printBill(bill *service.Bill) {
	s.console.Display("")
	s.console.Display("UPC\t\tName\t\tUnit Cost\tQuantity\tSubtotal")
	for _, line := range bill.Lines {
		s.console.Display(fmt.Sprintf("%s\t%s\t$%s\t%d\t$%s",
			line.UPC, line.Name, line.UnitCost.StringFixed(2),
			line.Quantity, line.Subtotal.StringFixed(2)))
	}
	s.console.Display("TOTAL\t\t\t\t\t\t$" + bill.Total.StringFixed(2))
}

// confirm is the terminal state: Y commits, N rolls back, anything else
// re-prompts.
func (s *placementService) confirm(uow model.UnitOfWork, order *model.Order) error {
	for {
		answer, err := s.console.Prompt("Are you satisfied with this? Y/N")
		if err != nil {
			_ = uow.Rollback()
			return err
		}
		switch strings.ToUpper(answer) {
		case "Y":
			if err := uow.Commit(); err != nil {
				return err
			}
			s.console.Display("Order has been made, and you have been billed. Have a good day.")
			s.log.WithFields(log.Fields{
				"customer": order.CustomerID,
				"placedAt": order.PlacedAt,
			}).Info("order committed")
			return nil
		case "N":
			if err := uow.Rollback(); err != nil {
				return err
			}
			s.console.Display("Order cancelled.")
			s.log.WithFields(log.Fields{"customer": order.CustomerID}).Info("order rolled back")
			return nil
		default:
			s.console.Display("Input a Y or N, try again.")
		}
	}
}
