package queries

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultOpenJobsLimit = 20
	MaxOpenJobsLimit     = 100
)

var ErrListOpenJobsQueryIsNotConstructed = errors.New(
	"ListOpenJobsQuery must be created via NewListOpenJobsQuery constructor",
)

// Cursor is the position after the last job of a page. Jobs are ordered by
// (createdAt, id), so a cursor stays valid while jobs are claimed.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode returns an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Encode.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, errs.NewValueIsInvalidErrorWithCause("after", err)
	}

	createdAt, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return Cursor{}, errs.NewValueIsInvalidErrorWithCause("after", errors.New("malformed cursor"))
	}

	var c Cursor
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Cursor{}, errs.NewValueIsInvalidErrorWithCause("after", err)
	}
	if c.ID, err = uuid.Parse(id); err != nil {
		return Cursor{}, errs.NewValueIsInvalidErrorWithCause("after", err)
	}
	return c, nil
}

// ListOpenJobsQuery pages through Accepted orders, oldest first. A nil cursor
// starts at the beginning.
type ListOpenJobsQuery struct {
	after *Cursor
	limit int

	guard guard.ConstructorGuard
}

// NewListOpenJobsQuery applies DefaultOpenJobsLimit when limit is zero.
func NewListOpenJobsQuery(after *Cursor, limit int) (ListOpenJobsQuery, error) {
	if limit == 0 {
		limit = DefaultOpenJobsLimit
	}
	if limit < 1 || limit > MaxOpenJobsLimit {
		return ListOpenJobsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOpenJobsLimit)
	}

	return ListOpenJobsQuery{
		after: after,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenJobsQueryIsNotConstructed)
}

func (q ListOpenJobsQuery) After() *Cursor { return q.after }
func (q ListOpenJobsQuery) Limit() int     { return q.limit }

// OpenJobView is what a courier sees before claiming.
type OpenJobView struct {
	OrderID           string
	RestaurantName    string
	RestaurantAddress string
	DeliveryAddress   string
	TotalAmount       decimal.Decimal
	PaymentMethod     string
	CreatedAt         time.Time
}

// ListOpenJobsQueryResponse holds one page. Next is nil on the last page.
type ListOpenJobsQueryResponse struct {
	Jobs []OpenJobView
	Next *Cursor
}
