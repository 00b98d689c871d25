package schema

import (
	"time"
)

// Custody represents the custodies table - dice held by a satellite contract on behalf of a depositor
type Custody struct {
	// Custodian is the address of the contract holding the dice
	Custodian string `gorm:"column:custodian;primaryKey;type:text"`
	// DiceID references the dice in custody
	DiceID uint64 `gorm:"column:dice_id;primaryKey"`
	// Depositor is the account that transferred the dice to the custodian
	Depositor string `gorm:"column:depositor;not null;type:text"`
	// CreatedAt is the timestamp when the dice was deposited
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Custody model
func (Custody) TableName() string {
	return "custodies"
}
