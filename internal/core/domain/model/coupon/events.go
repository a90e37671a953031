package coupon

import (
	"time"

	"fastereats/internal/pkg/ddd"

	"github.com/google/uuid"
)

const MintedEventName = "coupon.minted"

// MintedEvent tells the earning customer about their new code.
type MintedEvent struct {
	ddd.BaseEvent
	Code           string     `json:"code"`
	DiscountAmount string     `json:"discountAmount"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	SourceOrderID  *uuid.UUID `json:"sourceOrderId,omitempty"`
	CustomerID     *uuid.UUID `json:"customerId,omitempty"`
}
