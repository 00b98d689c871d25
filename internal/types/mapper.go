package types

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gowebpki/jcs"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

// DiceToDomain converts a stored dice to the domain type
func DiceToDomain(d *schema.Dice) (*domain.Dice, error) {
	if d == nil {
		return nil, nil
	}

	creationValue, err := ParseWei(d.CreationValue)
	if err != nil {
		return nil, fmt.Errorf("dice %d: %w", d.ID, err)
	}

	return &domain.Dice{
		ID:            domain.DiceID(d.ID),
		Power:         d.Power,
		Kind:          d.Kind,
		Owner:         common.HexToAddress(d.Owner),
		CreationValue: creationValue,
	}, nil
}

// DiceToSchema converts a domain dice to its stored form
func DiceToSchema(d *domain.Dice) *schema.Dice {
	return &schema.Dice{
		ID:            uint64(d.ID),
		Power:         d.Power,
		Kind:          d.Kind,
		Owner:         d.Owner.Hex(),
		CreationValue: FormatWei(d.CreationValue),
	}
}

// CustodyToDomain converts a stored custody record to the domain type
func CustodyToDomain(c *schema.Custody) *domain.Custody {
	if c == nil {
		return nil
	}
	return &domain.Custody{
		Custodian: common.HexToAddress(c.Custodian),
		DiceID:    domain.DiceID(c.DiceID),
		Depositor: common.HexToAddress(c.Depositor),
	}
}

// ListingToDomain converts a stored listing to the domain type.
// Only active listings are stored, so a nil row maps to nil.
func ListingToDomain(l *schema.Listing) *domain.Listing {
	if l == nil {
		return nil
	}
	return &domain.Listing{
		DiceID: domain.DiceID(l.DiceID),
		Seller: common.HexToAddress(l.Seller),
		Price:  l.Price,
		Active: true,
	}
}

// ListingsToDomain converts stored listings to domain types
func ListingsToDomain(listings []*schema.Listing) []*domain.Listing {
	result := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		result = append(result, ListingToDomain(l))
	}
	return result
}

// EventToSchema converts a domain event to its journal row.
// The payload is the canonical (RFC 8785) JSON of the event.
func EventToSchema(e *domain.Event) (*schema.Event, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	payload, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	var diceID *uint64
	if e.DiceID != nil {
		id := uint64(*e.DiceID)
		diceID = &id
	}

	return &schema.Event{
		Seq:       e.Seq,
		EventID:   e.ID,
		EventType: string(e.Type),
		Contract:  e.Contract.Hex(),
		TxHash:    e.TxHash.Hex(),
		DiceID:    diceID,
		Payload:   datatypes.JSON(payload),
		CreatedAt: e.Timestamp,
	}, nil
}

// EventToDomain converts a journal row to the domain event
func EventToDomain(e *schema.Event) (*domain.Event, error) {
	var event domain.Event
	if err := json.Unmarshal(e.Payload, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event %d: %w", e.Seq, err)
	}
	event.Seq = e.Seq
	return &event, nil
}

// EventsToDomain converts journal rows to domain events
func EventsToDomain(events []*schema.Event) ([]*domain.Event, error) {
	result := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		event, err := EventToDomain(e)
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, nil
}
