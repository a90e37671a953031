package queries

import (
	"database/sql"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/driver"

	"github.com/google/uuid"
)

// DriverView is a registry entry as shown to operators. The payout account
// number is masked to its last four characters.
type DriverView struct {
	ID                  uuid.UUID
	Name                string
	Phone               string
	LicenseNumber       string
	LicenseExpiry       time.Time
	VehicleType         string
	BankName            string
	MaskedAccountNumber string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

const driverViewColumns = `
	id,
	name,
	phone,
	license_number,
	license_expiry,
	vehicle_type,
	bank_name,
	account_number,
	created_at,
	updated_at`

func scanDriverViews(rows *sql.Rows) ([]DriverView, error) {
	drivers := make([]DriverView, 0)
	for rows.Next() {
		var (
			v       DriverView
			account string
		)
		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Phone,
			&v.LicenseNumber,
			&v.LicenseExpiry,
			&v.VehicleType,
			&v.BankName,
			&account,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, pgerr.Classify(err)
		}
		bank, err := driver.NewBankDetails(v.BankName, account)
		if err != nil {
			return nil, err
		}
		v.MaskedAccountNumber = bank.MaskedAccountNumber()
		drivers = append(drivers, v)
	}
	return drivers, pgerr.Classify(rows.Err())
}
