// Package driverrepo persists the driver registry.
package driverrepo

import (
	"time"

	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO maps the drivers table.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(32)"`
	LicenseNumber string    `gorm:"type:varchar(64)"`
	LicenseExpiry time.Time
	VehicleType   string `gorm:"type:varchar(64)"`
	BankName      string `gorm:"type:varchar(255)"`
	AccountNumber string `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Name:          d.Name(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		LicenseExpiry: d.LicenseExpiry(),
		VehicleType:   d.VehicleType(),
		BankName:      d.Bank().BankName(),
		AccountNumber: d.Bank().AccountNumber(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	bank, err := driver.NewBankDetails(dto.BankName, dto.AccountNumber)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID: id,
		Profile: driver.Profile{
			Name:          dto.Name,
			Phone:         dto.Phone,
			LicenseNumber: dto.LicenseNumber,
			LicenseExpiry: dto.LicenseExpiry,
			VehicleType:   dto.VehicleType,
			Bank:          bank,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
