package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/registry"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

// ContractsResponse describes the deployed contracts and the engine parameters
type ContractsResponse struct {
	Ledger       string `json:"ledger"`
	Arbiter      string `json:"arbiter"`
	Market       string `json:"market"`
	MinMintPrice string `json:"min_mint_price"`
	Commission   uint64 `json:"commission"`
	PriceUnit    string `json:"price_unit"`
	Operator     string `json:"operator"`
}

// DiceResponse represents a dice
type DiceResponse struct {
	ID            string  `json:"id"`
	Power         uint8   `json:"power"`
	Kind          uint8   `json:"kind"`
	Strength      uint8   `json:"strength"`
	Owner         string  `json:"owner"`
	CreationValue string  `json:"creation_value"`
	Custodian     *string `json:"custodian,omitempty"`
	Depositor     *string `json:"depositor,omitempty"`
}

// DiceListResponse represents a page of dice
type DiceListResponse struct {
	Dice   []*DiceResponse `json:"dice"`
	Total  uint64          `json:"total"`
	Offset int             `json:"offset"`
}

// ReceiptResponse represents the result of a committed call
type ReceiptResponse struct {
	TxHash string          `json:"tx_hash"`
	Events []*domain.Event `json:"events"`
}

// MintResponse represents the result of a mint
type MintResponse struct {
	DiceID string `json:"dice_id"`
	ReceiptResponse
}

// BattleResponse represents the result of a battle
type BattleResponse struct {
	Result *domain.BattleResult `json:"result"`
	ReceiptResponse
}

// BalanceResponse represents the native balance of an address
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// BattlePairResponse represents the opponent an account registered
type BattlePairResponse struct {
	Account  string  `json:"account"`
	Opponent *string `json:"opponent"`
}

// DepositsResponse represents the dice an account holds in custody
type DepositsResponse struct {
	Depositor string   `json:"depositor"`
	DiceIDs   []string `json:"dice_ids"`
}

// ListingResponse represents an active listing
type ListingResponse struct {
	DiceID string `json:"dice_id"`
	Seller string `json:"seller"`
	Price  uint64 `json:"price"`
	// PriceWei is the price converted with the market price unit
	PriceWei string `json:"price_wei"`
}

// ListingListResponse represents a page of listings
type ListingListResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Total    uint64             `json:"total"`
	Offset   int                `json:"offset"`
}

// MinimumPriceResponse represents the lowest accepted listing price of a dice
type MinimumPriceResponse struct {
	DiceID string `json:"dice_id"`
	Price  uint64 `json:"price"`
}

// EventListResponse represents a page of the event journal
type EventListResponse struct {
	Events []*domain.Event `json:"events"`
	// Next is the sequence to pass as after for the following page
	Next uint64 `json:"next"`
}

// MapContractsToDTO maps the deployment to its response
func MapContractsToDTO(contracts registry.Contracts, params registry.Parameters) *ContractsResponse {
	return &ContractsResponse{
		Ledger:       contracts.Ledger.Hex(),
		Arbiter:      contracts.Arbiter.Hex(),
		Market:       contracts.Market.Hex(),
		MinMintPrice: types.FormatWei(params.MinMintPrice),
		Commission:   params.Commission,
		PriceUnit:    types.FormatWei(params.PriceUnit),
		Operator:     params.Operator.Hex(),
	}
}

// MapDiceToDTO maps a dice to its response
func MapDiceToDTO(dice *domain.Dice, strength uint8) *DiceResponse {
	return &DiceResponse{
		ID:            dice.ID.String(),
		Power:         dice.Power,
		Kind:          dice.Kind,
		Strength:      strength,
		Owner:         dice.Owner.Hex(),
		CreationValue: types.FormatWei(dice.CreationValue),
	}
}

// MapReceiptToDTO maps a receipt to its response
func MapReceiptToDTO(receipt *host.Receipt) ReceiptResponse {
	if receipt == nil {
		return ReceiptResponse{Events: []*domain.Event{}}
	}
	events := receipt.Events
	if events == nil {
		events = []*domain.Event{}
	}
	return ReceiptResponse{
		TxHash: receipt.TxHash.Hex(),
		Events: events,
	}
}

// MapListingToDTO maps a listing to its response
func MapListingToDTO(listing *domain.Listing, priceUnit *uint256.Int) *ListingResponse {
	priceWei := new(uint256.Int).Mul(uint256.NewInt(listing.Price), priceUnit)
	return &ListingResponse{
		DiceID:   listing.DiceID.String(),
		Seller:   listing.Seller.Hex(),
		Price:    listing.Price,
		PriceWei: priceWei.Dec(),
	}
}

// AddressString returns the hex form of an optional address
func AddressString(address *common.Address) *string {
	if address == nil {
		return nil
	}
	return types.StringPtr(address.Hex())
}
