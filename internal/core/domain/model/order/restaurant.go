package order

import (
	"errors"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
)

// Restaurant is the restaurant identity captured at order time.
type Restaurant struct {
	id      kernel.UUID
	name    string
	address string
}

func NewRestaurant(id kernel.UUID, name, address string) (Restaurant, error) {
	var nameErr, addressErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("restaurantName")
	}
	if strings.TrimSpace(address) == "" {
		addressErr = errs.NewValueIsRequiredError("restaurantAddress")
	}
	if err := errors.Join(id.Validate(), nameErr, addressErr); err != nil {
		return Restaurant{}, err
	}
	return Restaurant{id: id, name: name, address: address}, nil
}

func (r Restaurant) ID() kernel.UUID { return r.id }
func (r Restaurant) Name() string    { return r.name }
func (r Restaurant) Address() string { return r.address }
