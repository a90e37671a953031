package outboxrepo

import (
	"context"
	"strings"
	"time"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxErrorLength keeps last_error readable in psql.
const maxErrorLength = 1024

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append stores messages. Used by the unit of work on commit.
func (r *GormOutboxRepository) Append(ctx context.Context, messages []MessageDTO) error {
	if len(messages) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&messages).Error; err != nil {
		return pgerr.Classify(err)
	}
	return nil
}

// ClaimPending must run inside a transaction that is committed before the
// messages are dispatched. SKIP LOCKED keeps concurrent claims disjoint while
// they run; once committed, locked_until hides the rows from other relays.
// An expired lease makes the message claimable again, which is how messages
// of a relay that died mid-batch get delivered.
//
// Usage:
//
//	uow.Begin(ctx)
//	messages, err := uow.OutboxRepository().ClaimPending(ctx, 50, 10, time.Minute)
//	...
//	uow.Commit(ctx)
//	for _, msg := range messages {
//	    // dispatch, then MarkProcessed or MarkFailed in a short transaction
//	}
func (r *GormOutboxRepository) ClaimPending(
	ctx context.Context,
	limit int,
	maxAttempts int,
	lease time.Duration,
) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL AND attempts < ?", maxAttempts).
		Where("(locked_until IS NULL OR locked_until < now())").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	if len(dtos) == 0 {
		return []ports.OutboxMessage{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	err = r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("locked_until", gorm.Expr("now() + make_interval(secs => ?)", lease.Seconds())).Error
	if err != nil {
		return nil, pgerr.Classify(err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}
	return messages, nil
}

// MarkProcessed acknowledges a delivered message. It returns
// *errs.ObjectNotFoundError when the id is unknown.
//
// Usage:
//
//	if err := uow.OutboxRepository().MarkProcessed(ctx, msg.ID); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"processed_at": time.Now().UTC(),
			"locked_until": nil,
		})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}
	return nil
}

// MarkFailed counts a failed attempt and releases the lease. The error text
// is cut to maxErrorLength bytes without splitting a character.
//
// Example:
//
//	if err := dispatch(ctx, msg); err != nil {
//	    _ = repo.MarkFailed(ctx, msg.ID, err) // claimable again on the next poll
//	}
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause error) error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	msg = truncateError(msg)

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   msg,
			"locked_until": nil,
		})
	if result.Error != nil {
		return pgerr.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}
	return nil
}

// DeliveredHandlers reads outside the claim transaction; the relay calls it
// on the pool while dispatching.
func (r *GormOutboxRepository) DeliveredHandlers(ctx context.Context, id uuid.UUID) ([]string, error) {
	handlers := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("message_id = ?", id).
		Order("handler").
		Pluck("handler", &handlers).Error
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return handlers, nil
}

// RecordDelivery is written right after the subscriber succeeds, in its own
// statement, so a later failure of the message does not repeat it.
func (r *GormOutboxRepository) RecordDelivery(ctx context.Context, id uuid.UUID, handler string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&DeliveryDTO{
			MessageID:   id,
			Handler:     handler,
			DeliveredAt: time.Now().UTC(),
		}).Error
	return pgerr.Classify(err)
}

func truncateError(msg string) string {
	if len(msg) <= maxErrorLength {
		return msg
	}
	return strings.ToValidUTF8(msg[:maxErrorLength], "")
}
