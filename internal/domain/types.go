package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// DiceID is the sequential identifier of a dice, assigned from 0 at mint time
type DiceID uint64

// String returns the decimal representation of the dice id
func (id DiceID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseDiceID parses a decimal dice id
func ParseDiceID(s string) (DiceID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dice id %q: %w", s, err)
	}
	return DiceID(v), nil
}

// Dice is the tradable asset record
type Dice struct {
	ID            DiceID         `json:"id"`
	Power         uint8          `json:"power"`
	Kind          uint8          `json:"kind"`
	Owner         common.Address `json:"owner"`
	CreationValue *uint256.Int   `json:"creation_value"`
}

// Custody is a dice held by a satellite contract on behalf of the account that deposited it
type Custody struct {
	Custodian common.Address `json:"custodian"`
	DiceID    DiceID         `json:"dice_id"`
	Depositor common.Address `json:"depositor"`
}

// Listing is a sale offer for a dice held by the market.
// Price is expressed in market price units, not wei.
type Listing struct {
	DiceID DiceID         `json:"dice_id"`
	Seller common.Address `json:"seller"`
	Price  uint64         `json:"price"`
	Active bool           `json:"active"`
}

// BattleOutcome is the result kind of a battle
type BattleOutcome string

const (
	BattleOutcomeWin  BattleOutcome = "win"
	BattleOutcomeDraw BattleOutcome = "draw"
)

// BattleResult describes a resolved battle.
// Winner and loser fields are only set when the outcome is a win.
type BattleResult struct {
	Outcome          BattleOutcome   `json:"outcome"`
	DiceID           DiceID          `json:"dice_id"`
	OpponentDiceID   DiceID          `json:"opponent_dice_id"`
	Strength         uint8           `json:"strength"`
	OpponentStrength uint8           `json:"opponent_strength"`
	Winner           *common.Address `json:"winner,omitempty"`
	Loser            *common.Address `json:"loser,omitempty"`
	WinnerDiceID     *DiceID         `json:"winner_dice_id,omitempty"`
	LoserDiceID      *DiceID         `json:"loser_dice_id,omitempty"`
}

// EventType represents the kind of notification emitted by a contract
type EventType string

const (
	EventTypeDiceCreated     EventType = "dice_created"
	EventTypeDiceTransferred EventType = "dice_transferred"
	EventTypePairingSet      EventType = "pairing_set"
	EventTypeBattleWon       EventType = "battle_won"
	EventTypeBattleDraw      EventType = "battle_draw"
	EventTypeDiceListed      EventType = "dice_listed"
	EventTypeDiceUnlisted    EventType = "dice_unlisted"
	EventTypeDiceBought      EventType = "dice_bought"
	EventTypeDiceWithdrawn   EventType = "dice_withdrawn"
)

// eventSignatures maps event types to the solidity-style signature used for their topic
var eventSignatures = map[EventType]string{
	EventTypeDiceCreated:     "DiceCreated(uint256,address,uint256)",
	EventTypeDiceTransferred: "DiceTransferred(uint256,address,address)",
	EventTypePairingSet:      "BattlePairSet(address,address)",
	EventTypeBattleWon:       "BattleWin(uint256,uint256,address,address)",
	EventTypeBattleDraw:      "BattleDraw(uint256,uint256,address,address)",
	EventTypeDiceListed:      "DiceListed(uint256,address,uint256)",
	EventTypeDiceUnlisted:    "DiceUnlisted(uint256,address)",
	EventTypeDiceBought:      "DiceBought(uint256,address,address,uint256)",
	EventTypeDiceWithdrawn:   "DiceWithdrawn(uint256,address)",
}

// Event is a structured notification emitted by a contract during a committed call.
//
// Field usage per type:
//   - dice_created:     DiceID, To (owner), Amount (creation value)
//   - dice_transferred: DiceID, From, To
//   - pairing_set:      From (account), To (opponent)
//   - battle_won:       DiceID (winner dice), OtherDiceID (loser dice), To (winner), From (loser)
//   - battle_draw:      DiceID, OtherDiceID, From (caller), To (opponent)
//   - dice_listed:      DiceID, From (seller), Amount (price in wei)
//   - dice_unlisted:    DiceID, From (seller)
//   - dice_bought:      DiceID, From (seller), To (buyer), Amount (payment)
//   - dice_withdrawn:   DiceID, To (depositor)
type Event struct {
	ID          string          `json:"id"`  // ULID assigned when journaled
	Seq         uint64          `json:"seq"` // journal sequence, strictly increasing
	Type        EventType       `json:"type"`
	Contract    common.Address  `json:"contract"`
	TxHash      common.Hash     `json:"tx_hash"`
	DiceID      *DiceID         `json:"dice_id,omitempty"`
	OtherDiceID *DiceID         `json:"other_dice_id,omitempty"`
	From        *common.Address `json:"from,omitempty"`
	To          *common.Address `json:"to,omitempty"`
	Amount      *uint256.Int    `json:"amount,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Topic returns the keccak256 hash of the event signature
func (t EventType) Topic() common.Hash {
	sig, ok := eventSignatures[t]
	if !ok {
		return common.Hash{}
	}
	return crypto.Keccak256Hash([]byte(sig))
}

// IsValidEventType checks if an event type is known
func IsValidEventType(t EventType) bool {
	_, ok := eventSignatures[t]
	return ok
}

// Valid checks that the fields required by the event type are present
func (e *Event) Valid() bool {
	if !IsValidEventType(e.Type) {
		return false
	}

	switch e.Type {
	case EventTypeDiceCreated:
		return e.DiceID != nil && e.To != nil && e.Amount != nil
	case EventTypeDiceTransferred:
		return e.DiceID != nil && e.From != nil && e.To != nil
	case EventTypePairingSet:
		return e.From != nil && e.To != nil
	case EventTypeBattleWon, EventTypeBattleDraw:
		return e.DiceID != nil && e.OtherDiceID != nil && e.From != nil && e.To != nil
	case EventTypeDiceListed:
		return e.DiceID != nil && e.From != nil && e.Amount != nil
	case EventTypeDiceUnlisted:
		return e.DiceID != nil && e.From != nil
	case EventTypeDiceBought:
		return e.DiceID != nil && e.From != nil && e.To != nil && e.Amount != nil
	case EventTypeDiceWithdrawn:
		return e.DiceID != nil && e.To != nil
	}

	return false
}

// IsZeroAddress checks if an address is the zero address
func IsZeroAddress(address common.Address) bool {
	return address == (common.Address{})
}

// ParseAddress parses a hex address, rejecting malformed input and the zero address
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	address := common.HexToAddress(s)
	if IsZeroAddress(address) {
		return common.Address{}, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}
	return address, nil
}

// NormalizeAddress normalizes an address to its checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).String()
	}
	return address
}

// AddressPtr returns a pointer to a copy of the address
func AddressPtr(address common.Address) *common.Address {
	return &address
}

// DiceIDPtr returns a pointer to a copy of the dice id
func DiceIDPtr(id DiceID) *DiceID {
	return &id
}
