package store

import (
	"context"

	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,EventJournal=MockEventJournal

// Store defines the interface for the engine's persistent state.
// Lookups return (nil, nil) when the record does not exist.
type Store interface {
	EventJournal

	// Transaction runs fn against a transactional view of the store.
	// Changes made through tx are committed only if fn returns nil.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// NextDiceID reserves and returns the next sequential dice id, starting from 0
	NextDiceID(ctx context.Context) (uint64, error)
	// CreateDice inserts a newly minted dice
	CreateDice(ctx context.Context, dice *schema.Dice) error
	// GetDice retrieves a dice by id
	GetDice(ctx context.Context, id uint64) (*schema.Dice, error)
	// UpdateDiceOwner sets the owner of an existing dice
	UpdateDiceOwner(ctx context.Context, id uint64, owner string) error
	// CountDice returns the number of minted dice
	CountDice(ctx context.Context) (uint64, error)
	// GetDiceByOwner retrieves dice owned by an address ordered by id, with the total count
	GetDiceByOwner(ctx context.Context, owner string, limit, offset int) ([]*schema.Dice, uint64, error)

	// GetCustody retrieves the custody record of a dice held by a custodian
	GetCustody(ctx context.Context, custodian string, diceID uint64) (*schema.Custody, error)
	// GetCustodiesByDepositor retrieves dice held by a custodian on behalf of a depositor
	GetCustodiesByDepositor(ctx context.Context, custodian, depositor string) ([]*schema.Custody, error)
	// CreateCustody records a deposit, replacing any previous record for the same dice
	CreateCustody(ctx context.Context, custody *schema.Custody) error
	// DeleteCustody removes a custody record
	DeleteCustody(ctx context.Context, custodian string, diceID uint64) error

	// GetBattlePair retrieves the opponent an account registered
	GetBattlePair(ctx context.Context, account string) (*schema.BattlePair, error)
	// SetBattlePair registers or replaces the opponent of an account
	SetBattlePair(ctx context.Context, account, opponent string) error

	// GetListing retrieves the active listing of a dice
	GetListing(ctx context.Context, diceID uint64) (*schema.Listing, error)
	// UpsertListing creates a listing or replaces its price and seller
	UpsertListing(ctx context.Context, listing *schema.Listing) error
	// DeleteListing removes a listing
	DeleteListing(ctx context.Context, diceID uint64) error
	// GetListings retrieves active listings ordered by dice id, with the total count
	GetListings(ctx context.Context, filter ListingFilter) ([]*schema.Listing, uint64, error)

	// GetBalance retrieves the wei balance of an address as a decimal string, "0" if unknown
	GetBalance(ctx context.Context, address string) (string, error)
	// SetBalance stores the wei balance of an address
	SetBalance(ctx context.Context, address, balance string) error

	// GetKeyValue retrieves a value by key, "" if unknown
	GetKeyValue(ctx context.Context, key string) (string, error)
	// SetKeyValue stores a value by key
	SetKeyValue(ctx context.Context, key, value string) error
}

// EventJournal defines the append-only event log and the relay cursors over it
type EventJournal interface {
	// AppendEvents appends events to the journal, assigning their Seq
	AppendEvents(ctx context.Context, events []*schema.Event) error
	// GetEventsAfter retrieves up to limit events with Seq greater than seq, in order
	GetEventsAfter(ctx context.Context, seq uint64, limit int) ([]*schema.Event, error)
	// GetEventCursor retrieves the last relayed sequence of a named consumer, 0 if unknown
	GetEventCursor(ctx context.Context, name string) (uint64, error)
	// SetEventCursor stores the last relayed sequence of a named consumer
	SetEventCursor(ctx context.Context, name string, seq uint64) error
}

// ListingFilter narrows a listing query
type ListingFilter struct {
	Seller *string
	Limit  int
	Offset int
}

const (
	// KeyDiceSequence holds the next dice id
	KeyDiceSequence = "sequence:dice"
	// KeyCallNonce holds the number of executed calls
	KeyCallNonce = "sequence:call_nonce"
	// KeyTotalSupply holds the total native currency in circulation
	KeyTotalSupply = "supply:total"

	eventCursorKeyPrefix = "event_cursor:"

	// DefaultListLimit is used when a query limit is not positive
	DefaultListLimit = 100
)

func eventCursorKey(name string) string {
	return eventCursorKeyPrefix + name
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
