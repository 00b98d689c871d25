package schema

import (
	"time"
)

// Dice represents the dice table - the canonical registry of minted dice
type Dice struct {
	// ID is the sequential dice id, assigned by the ledger starting from 0
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Power is the number of faces of the dice (1-255)
	Power uint8 `gorm:"column:power;not null;type:smallint"`
	// Kind is the dice category (1-255)
	Kind uint8 `gorm:"column:kind;not null;type:smallint"`
	// Owner is the checksummed address of the current owner (an account or a custodian contract)
	Owner string `gorm:"column:owner;not null;type:text;index:idx_dice_owner"`
	// CreationValue is the wei paid at mint (stored as string to support up to 78 digits)
	CreationValue string `gorm:"column:creation_value;not null;type:numeric(78,0)"`
	// CreatedAt is the timestamp when the dice was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last ownership change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Dice model
func (Dice) TableName() string {
	return "dice"
}
