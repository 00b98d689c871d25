package schema

import (
	"time"
)

// Listing represents the listings table - active market offers.
// A row exists only while the listing is active.
type Listing struct {
	// DiceID references the listed dice
	DiceID uint64 `gorm:"column:dice_id;primaryKey;autoIncrement:false"`
	// Seller is the depositor who listed the dice
	Seller string `gorm:"column:seller;not null;type:text;index:idx_listings_seller"`
	// Price is the asking price in market price units
	Price uint64 `gorm:"column:price;not null"`
	// CreatedAt is the timestamp when the dice was first listed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last price change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
