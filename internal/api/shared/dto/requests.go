package dto

// MintRequest represents the body of POST /dice
type MintRequest struct {
	Power uint8 `json:"power" binding:"required"`
	Kind  uint8 `json:"kind" binding:"required"`
	// Value is the payment in wei, or a denominated amount such as "0.01 ether"
	Value string `json:"value" binding:"required"`
}

// TransferRequest represents the body of POST /dice/:id/transfer
type TransferRequest struct {
	To string `json:"to" binding:"required"`
}

// FundRequest represents the body of POST /balances/fund
type FundRequest struct {
	Address string `json:"address" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// BattlePairRequest represents the body of PUT /battle/pair
type BattlePairRequest struct {
	Opponent string `json:"opponent" binding:"required"`
}

// BattleRequest represents the body of POST /battle
type BattleRequest struct {
	DiceID         string `json:"dice_id" binding:"required"`
	OpponentDiceID string `json:"opponent_dice_id" binding:"required"`
}

// ListRequest represents the body of POST /market/listings/:id
type ListRequest struct {
	// Price is expressed in market price units
	Price uint64 `json:"price" binding:"required"`
}

// BuyRequest represents the body of POST /market/listings/:id/buy
type BuyRequest struct {
	// Payment is the amount paid in wei, or a denominated amount
	Payment string `json:"payment" binding:"required"`
}
