package order

import (
	"errors"
	"strings"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"
)

// Courier is the courier recorded on the order by a successful claim. Name and
// phone are copied so the record stays readable for customers and support.
type Courier struct {
	id    kernel.UUID
	name  string
	phone string
}

func NewCourier(id kernel.UUID, name, phone string) (Courier, error) {
	var nameErr, phoneErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("courierName")
	}
	if strings.TrimSpace(phone) == "" {
		phoneErr = errs.NewValueIsRequiredError("courierPhone")
	}
	if err := errors.Join(id.Validate(), nameErr, phoneErr); err != nil {
		return Courier{}, err
	}
	return Courier{id: id, name: name, phone: phone}, nil
}

func (c Courier) ID() kernel.UUID { return c.id }
func (c Courier) Name() string    { return c.name }
func (c Courier) Phone() string   { return c.phone }
