package schema

import (
	"time"
)

// BattlePair represents the battle_pairs table - the opponent each account is willing to battle
type BattlePair struct {
	// Account is the address that registered the pairing
	Account string `gorm:"column:account;primaryKey;type:text"`
	// Opponent is the address the account is willing to battle
	Opponent string `gorm:"column:opponent;not null;type:text"`
	// UpdatedAt is the timestamp of the last pairing change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BattlePair model
func (BattlePair) TableName() string {
	return "battle_pairs"
}
