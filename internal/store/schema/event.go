package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Event represents the events table - the transactional journal of contract notifications
type Event struct {
	// Seq is an auto-incrementing sequence number for ordering and cursor-based relay
	Seq uint64 `gorm:"column:seq;primaryKey;autoIncrement"`
	// EventID is the ULID of the event, used as the message id when relayed
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:text"`
	// EventType is the notification kind (dice_created, battle_won, ...)
	EventType string `gorm:"column:event_type;not null;type:text;index:idx_events_type"`
	// Contract is the address of the emitting contract
	Contract string `gorm:"column:contract;not null;type:text"`
	// TxHash is the hash of the call that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text;index:idx_events_tx_hash"`
	// DiceID is the primary dice of the event, if any
	DiceID *uint64 `gorm:"column:dice_id;index:idx_events_dice_id"`
	// Payload is the canonical JSON of the full event
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the timestamp of the call that emitted the event
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
