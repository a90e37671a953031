package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when using a zero-value Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Profile is the editable part of a driver: everything the driver supplies
// at registration and may change later.
type Profile struct {
	Name          string
	Phone         string
	LicenseNumber string
	LicenseExpiry time.Time
	VehicleType   string
	Bank          BankDetails
}

// Validate reports every missing field at once.
func (p Profile) Validate() error {
	var errList []error
	for _, f := range []struct{ name, value string }{
		{"name", p.Name},
		{"phone", p.Phone},
		{"licenseNumber", p.LicenseNumber},
		{"vehicleType", p.VehicleType},
	} {
		if strings.TrimSpace(f.value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(f.name))
		}
	}
	if p.LicenseExpiry.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("licenseExpiry"))
	}
	if p.Bank.isZero() {
		errList = append(errList, errs.NewValueIsRequiredError("bankDetails"))
	}
	return errors.Join(errList...)
}

// Driver is a courier registered to deliver orders. It is an aggregate root
// of its own; orders refer to it by id and keep a copy of name and phone.
//
// Business rules:
//   - name, phone, licence number and vehicle type are required
//   - the licence number is unique across the registry (enforced by storage)
//   - a driver may be registered with an expired licence but cannot claim
//     jobs until the licence is renewed
//
// Example usage:
//
//	bank, _ := driver.NewBankDetails("People's Bank", "0012345678")
//	d, err := driver.NewDriver(kernel.NewUUID(), driver.Profile{
//	    Name:          "Sam Silva",
//	    Phone:         "+94770000002",
//	    LicenseNumber: "B1234567",
//	    LicenseExpiry: time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
//	    VehicleType:   "motorbike",
//	    Bank:          bank,
//	}, time.Now())
//	if err != nil {
//	    return err
//	}
//	courier, err := d.Courier(time.Now())
type Driver struct {
	id        kernel.UUID
	profile   Profile
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDriver registers a driver. All profile fields are validated together and
// the failures are returned joined.
func NewDriver(id kernel.UUID, profile Profile, now time.Time) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(d.setID(id), d.setProfile(profile)); err != nil {
		return nil, err
	}

	d.createdAt = now.UTC()
	d.updatedAt = d.createdAt
	return d, nil
}

// Snapshot is the stored state of a driver.
type Snapshot struct {
	ID        kernel.UUID
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreDriver rebuilds a driver from storage. It applies the same
// validation as NewDriver, so a row edited by hand into an invalid state is
// reported instead of loaded.
func RestoreDriver(s Snapshot) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(d.setID(s.ID), d.setProfile(s.Profile)); err != nil {
		return nil, err
	}

	d.createdAt = s.CreatedAt
	d.updatedAt = s.UpdatedAt
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// Update replaces the whole profile. Nothing changes when validation fails.
func (d *Driver) Update(profile Profile, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	candidate := &Driver{}
	if err := candidate.setProfile(profile); err != nil {
		return err
	}

	d.profile = candidate.profile
	d.updatedAt = now.UTC()
	return nil
}

// Courier is the identity recorded on an order this driver claims. A driver
// whose licence has expired at now is refused with *errs.ValueIsInvalidError.
func (d *Driver) Courier(now time.Time) (order.Courier, error) {
	if err := d.Validate(); err != nil {
		return order.Courier{}, err
	}
	if !now.Before(d.profile.LicenseExpiry) {
		return order.Courier{}, errs.NewValueIsInvalidErrorWithCause("licenseExpiry",
			fmt.Errorf("licence %s of driver %s expired on %s",
				d.profile.LicenseNumber, d.id, d.profile.LicenseExpiry.Format(time.DateOnly)))
	}
	return order.NewCourier(d.id, d.profile.Name, d.profile.Phone)
}

func (d *Driver) ID() kernel.UUID          { return d.id }
func (d *Driver) Name() string             { return d.profile.Name }
func (d *Driver) Phone() string            { return d.profile.Phone }
func (d *Driver) LicenseNumber() string    { return d.profile.LicenseNumber }
func (d *Driver) LicenseExpiry() time.Time { return d.profile.LicenseExpiry }
func (d *Driver) VehicleType() string      { return d.profile.VehicleType }
func (d *Driver) Bank() BankDetails        { return d.profile.Bank }
func (d *Driver) CreatedAt() time.Time     { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time     { return d.updatedAt }

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("driverId")
	}
	d.id = id
	return nil
}

func (d *Driver) setProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	d.profile = Profile{
		Name:          strings.TrimSpace(p.Name),
		Phone:         strings.TrimSpace(p.Phone),
		LicenseNumber: strings.ToUpper(strings.TrimSpace(p.LicenseNumber)),
		LicenseExpiry: p.LicenseExpiry.UTC(),
		VehicleType:   strings.TrimSpace(p.VehicleType),
		Bank:          p.Bank,
	}
	return nil
}
