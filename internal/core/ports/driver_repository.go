package ports

import (
	"context"

	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
)

// DriverRepository persists the driver registry.
type DriverRepository interface {
	// Add stores a newly registered driver. A licence number that is already
	// registered is reported as *errs.ValueIsInvalidError for "licenseNumber".
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get loads a driver by id. A missing driver is *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Update overwrites the stored profile. Same errors as Add and Get.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes a driver. A missing driver is *errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
