package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

// CustomerResolver interactively determines who is placing the order:
// an existing customer picked from the list, or a newly registered one.
type CustomerResolver interface {
	Resolve() (*model.Customer, error)
}

func NewCustomerResolver(store model.Store, console Console, logger log.FieldLogger) CustomerResolver {
	return &customerResolver{store: store, console: console, log: logger}
}

type customerResolver struct {
	store   model.Store
	console Console
	log     log.FieldLogger
}

// Resolve loops until a customer is resolved. A failed registration
// ("not actually new") or an abandoned selection re-asks the new/existing
// question; only console errors terminate the loop without a customer.
func (r *customerResolver) Resolve() (*model.Customer, error) {
	for {
		answer, err := r.console.Prompt("Are you a new customer? Y/N")
		if err != nil {
			return nil, err
		}
		switch strings.ToUpper(answer) {
		case "Y":
			customer, err := r.register()
			if err != nil {
				return nil, err
			}
			if customer != nil {
				return customer, nil
			}
		case "N":
			customer, err := r.selectExisting()
			if err != nil {
				return nil, err
			}
			if customer != nil {
				return customer, nil
			}
		default:
			r.console.Display("Input a Y or N, try again.")
		}
	}
}

// register collects the new customer's fields and persists them in their
// own short transaction. A uniqueness collision on (last, first, phone)
// means the caller is not actually new; nil, nil sends them back to the
// new/existing question.
func (r *customerResolver) register() (*model.Customer, error) {
	firstName, err := r.console.Prompt("Hello customer, can you please enter your first name:")
	if err != nil {
		return nil, err
	}
	lastName, err := r.console.Prompt("Please enter your last name:")
	if err != nil {
		return nil, err
	}
	phone, err := r.console.Prompt("Please enter your phone number:")
	if err != nil {
		return nil, err
	}
	street, err := r.console.Prompt("Please enter your street:")
	if err != nil {
		return nil, err
	}
	zip, err := r.console.Prompt("and last, your zip code:")
	if err != nil {
		return nil, err
	}

	customers := r.store.Customers()
	id, err := customers.NextID()
	if err != nil {
		return nil, err
	}
	customer := &model.Customer{
		ID:        id,
		LastName:  lastName,
		FirstName: firstName,
		Street:    street,
		Zip:       zip,
		Phone:     phone,
	}

	if err := customers.Add(customer); err != nil {
		if errors.Is(err, model.ErrDuplicateCustomer) {
			r.console.Display("You're not a new customer!")
			return nil, nil
		}
		return nil, err
	}

	r.log.WithFields(log.Fields{"customer": customer.ID}).Info("registered new customer")
	r.console.Display("You are: " + customer.String())
	return customer, nil
}

// selectExisting lists all customers and reads an identifier. Blank
// input abandons the selection (nil, nil); an unknown identifier
// re-prompts.
func (r *customerResolver) selectExisting() (*model.Customer, error) {
	customers := r.store.Customers()
	for {
		all, err := customers.FindAll()
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			r.console.Display("No previously existing customers, please indicate as new customer")
			return nil, nil
		}

		r.console.Display("Which customer are you? Select your customer ID from the following customers:")
		for _, customer := range all {
			r.console.Display("\t" + customer.String())
		}

		input, err := r.console.Prompt("Type your customer id here (leave blank to skip):")
		if err != nil {
			return nil, err
		}
		if input == "" {
			return nil, nil
		}

		if id, err := uuid.Parse(input); err == nil {
			customer, err := customers.Find(id)
			if err == nil {
				r.console.Display("You have selected:\n\t" + customer.String())
				return customer, nil
			}
			if !errors.Is(err, model.ErrCustomerNotFound) {
				return nil, err
			}
		}
		r.console.Display("Invalid customer ID! Try again.")
	}
}
