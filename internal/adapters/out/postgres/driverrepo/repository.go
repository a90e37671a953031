package driverrepo

import (
	"context"
	"errors"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add inserts a newly registered driver.
//
// Parameters:
//   - ctx: carries the request deadline
//   - aggregate: a driver built by driver.NewDriver
//
// Returns:
//   - *errs.ValueIsInvalidError for "licenseNumber" when the licence is
//     already registered to another driver
//   - *errs.ServiceUnavailableError when the database cannot be reached
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), profile, time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := uow.DriverRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return classifyWrite(err)
	}
	return nil
}

// Get loads a driver by id. A missing row is *errs.ObjectNotFoundError.
//
// Example:
//
//	d, err := uow.DriverRepository().Get(ctx, courierID)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown courier
//	}
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("driverId")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, pgerr.Classify(err)
	}

	return toDomain(dto)
}

// Update overwrites every column but created_at.
//
// Example:
//
//	d, err := uow.DriverRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = d.Update(profile, time.Now()); err != nil {
//	    return err
//	}
//	if err = uow.DriverRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":           dto.Name,
			"phone":          dto.Phone,
			"license_number": dto.LicenseNumber,
			"license_expiry": dto.LicenseExpiry,
			"vehicle_type":   dto.VehicleType,
			"bank_name":      dto.BankName,
			"account_number": dto.AccountNumber,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return classifyWrite(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}
	return nil
}

// Delete removes a driver. Orders the driver delivered keep their own copy
// of name and phone.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&DriverDTO{})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}
	return nil
}

func classifyWrite(err error) error {
	if pgerr.IsUniqueViolation(err) {
		return errs.NewValueIsInvalidErrorWithCause("licenseNumber", gorm.ErrDuplicatedKey)
	}
	return pgerr.Classify(err)
}
