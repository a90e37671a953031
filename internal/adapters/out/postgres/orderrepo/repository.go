package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/ddd"
	"fastereats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose events must reach the outbox.
type aggregateTracker interface {
	TrackAggregate(aggregateID string, aggregate ddd.AggregateRoot)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order, its cart lines and its pending history.
//
// Parameters:
//   - aggregate: a validated order, normally fresh from order.NewOrder
//
// Returns:
//   - *errs.ValueIsInvalidError for "orderNumber" when the number is taken
//   - *errs.ServiceUnavailableError when the database cannot be reached
//
// Example:
//
//	number, err := uow.OrderRepository().NextNumber(ctx, now)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(number, customerID, restaurant, lines, fee, order.Cash, address)
//	if err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
		}
		return pgerr.Classify(err)
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	aggregate.MarkPersisted(aggregate.Version())
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update is a compare-and-swap on (id, version, status). The mutable columns
// are status, courier, discount, total and coupon; everything else was fixed
// at placement.
//
// A lost race returns *errs.VersionIsInvalidError; the caller re-reads the
// order to explain the conflict.
//
// Example:
//
//	o, err := repo.GetByNumber(ctx, number)
//	if err != nil {
//	    return err
//	}
//	if err := o.AssignCourier(courier); err != nil {
//	    return err
//	}
//	err = repo.Update(ctx, o)
//	if errors.Is(err, errs.ErrVersionIsInvalid) {
//	    // someone else moved the order first
//	}
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, aggregate.Version(), int(aggregate.PersistedStatus())).
		Updates(map[string]any{
			"status":        dto.Status,
			"courier_id":    dto.CourierID,
			"courier_name":  dto.CourierName,
			"courier_phone": dto.CourierPhone,
			"discount":      dto.Discount,
			"total_amount":  dto.TotalAmount,
			"coupon_code":   dto.CouponCode,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    dto.UpdatedAt,
		})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("%s is no longer at version %d in status %s",
				aggregate.Number(), aggregate.Version(), aggregate.PersistedStatus()))
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	aggregate.MarkPersisted(aggregate.Version() + 1)
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get loads an order by internal id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order", id.String(), "id = ?", id.Bytes())
}

// GetByNumber loads an order by its external number, the identifier every
// HTTP route uses. An unknown number is *errs.ObjectNotFoundError for
// "orderId".
//
// Example:
//
//	o, err := uow.OrderRepository().GetByNumber(ctx, "ORD_20250101_001")
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if strings.TrimSpace(number) == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	return r.first(ctx, "orderId", number, "number = ?", number)
}

// NextNumber bumps the per-day counter. The counter row stays locked until
// the surrounding transaction ends, so numbers are gapless per committed day.
// It must therefore be called inside Begin/Commit.
//
// Example:
//
//	number, err := repo.NextNumber(ctx, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
//	// number == "ORD_20250101_001" for the first order of the day
func (r *GormOrderRepository) NextNumber(ctx context.Context, day time.Time) (string, error) {
	dayStr := day.UTC().Format("2006-01-02")

	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_seq (day, seq)
		VALUES (CAST(? AS date), 1)
		ON CONFLICT (day) DO UPDATE
			SET seq = order_number_seq.seq + 1
		RETURNING seq
	`, dayStr).Scan(&seq).Error
	if err != nil {
		return "", pgerr.Classify(fmt.Errorf("generate order seq: %w", err))
	}

	return fmt.Sprintf("ORD_%s_%03d", strings.ReplaceAll(dayStr, "-", ""), seq), nil
}

func (r *GormOrderRepository) first(ctx context.Context, param string, id any, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("CartLines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, pgerr.Classify(err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) appendHistory(ctx context.Context, aggregate *order.Order) error {
	changes := aggregate.PendingStatusChanges()
	if len(changes) == 0 {
		return nil
	}

	rows := historyFromDomain(aggregate.ID().Bytes(), changes)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return pgerr.Classify(err)
	}
	return nil
}
