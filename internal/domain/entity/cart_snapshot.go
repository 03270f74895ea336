package entity

import (
	"time"

	"github.com/salepointhq/salepoint-api/internal/domain/enum"
)

// CartSnapshot is the durable single-slot mirror of one session's working
// cart. Payload is the JSON-serialized ordered line item array; every cart
// mutation overwrites the slot last-write-wins, and the slot is removed on
// explicit clear or successful submission.
type CartSnapshot struct {
	SessionID    string            `gorm:"primaryKey;size:128" json:"session_id"`
	Payload      []byte            `gorm:"type:jsonb" json:"payload"`
	DiscountMode enum.DiscountMode `gorm:"default:0" json:"discount_mode"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName returns the table name for the CartSnapshot model
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
