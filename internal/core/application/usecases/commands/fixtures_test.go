package commands_test

import (
	"testing"
	"time"

	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newPricer(t *testing.T) services.OrderPricer {
	t.Helper()
	p, err := services.NewOrderPricer(kernel.ZeroMoney, money(t, 3000), money(t, 500), 7*24*time.Hour)
	require.NoError(t, err)
	return p
}

func newRestaurant(t *testing.T, id kernel.UUID) order.Restaurant {
	t.Helper()
	r, err := order.NewRestaurant(id, "Pizza Place", "1 Main St")
	require.NoError(t, err)
	return r
}

func driverProfile(t *testing.T, licenseExpiry time.Time) driver.Profile {
	t.Helper()
	bank, err := driver.NewBankDetails("People's Bank", "0012345678")
	require.NoError(t, err)
	return driver.Profile{
		Name:          "Sam",
		Phone:         "+15550100",
		LicenseNumber: "B1234567",
		LicenseExpiry: licenseExpiry,
		VehicleType:   "motorbike",
		Bank:          bank,
	}
}

// registeredDriver returns a driver with a licence valid for another year.
func registeredDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), driverProfile(t, time.Now().AddDate(1, 0, 0)), time.Now())
	require.NoError(t, err)
	return d
}

func newCart(t *testing.T, unitPrice int64) []order.CartLine {
	t.Helper()
	line, err := order.NewCartLine("margherita", "Margherita", money(t, unitPrice), 2)
	require.NoError(t, err)
	return []order.CartLine{line}
}

func newCourier(t *testing.T) order.Courier {
	t.Helper()
	c, err := order.NewCourier(kernel.NewUUID(), "Sam", "+15550100")
	require.NoError(t, err)
	return c
}

// placedOrder returns an order as the repository would load it.
func placedOrder(t *testing.T, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder("ORD_20250101_001", kernel.NewUUID(), newRestaurant(t, restaurantID),
		newCart(t, 1000), kernel.ZeroMoney, order.Card, "5 Oak Ave")
	require.NoError(t, err)
	o.MarkPersisted(1)
	o.ClearDomainEvents()
	return o
}

func acceptedOrder(t *testing.T) *order.Order {
	t.Helper()
	restaurantID := kernel.NewUUID()
	o := placedOrder(t, restaurantID)
	require.NoError(t, o.Decide(restaurantID, order.DecisionAccept))
	o.MarkPersisted(2)
	o.ClearDomainEvents()
	return o
}

func claimedOrder(t *testing.T, courier order.Courier) *order.Order {
	t.Helper()
	o := acceptedOrder(t)
	require.NoError(t, o.AssignCourier(courier))
	o.MarkPersisted(3)
	o.ClearDomainEvents()
	return o
}
