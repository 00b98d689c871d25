package schema

import (
	"time"
)

// Account represents the accounts table - native currency balances of accounts and contracts
type Account struct {
	// Address is the checksummed account address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Balance is the wei balance (stored as string to support up to 78 digits)
	Balance string `gorm:"column:balance;not null;type:numeric(78,0)"`
	// UpdatedAt is the timestamp of the last balance change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
