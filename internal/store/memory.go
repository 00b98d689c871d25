package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

type custodyKey struct {
	custodian string
	diceID    uint64
}

// memoryState holds the full engine state of a memory store
type memoryState struct {
	dice        map[uint64]schema.Dice
	custodies   map[custodyKey]schema.Custody
	battlePairs map[string]schema.BattlePair
	listings    map[uint64]schema.Listing
	accounts    map[string]schema.Account
	keyValues   map[string]schema.KeyValueStore
	events      []schema.Event
	nextSeq     uint64
}

func newMemoryState() *memoryState {
	return &memoryState{
		dice:        make(map[uint64]schema.Dice),
		custodies:   make(map[custodyKey]schema.Custody),
		battlePairs: make(map[string]schema.BattlePair),
		listings:    make(map[uint64]schema.Listing),
		accounts:    make(map[string]schema.Account),
		keyValues:   make(map[string]schema.KeyValueStore),
		nextSeq:     1,
	}
}

// clone copies the state for a transaction.
// The journal is append-only, so the copy shares its backing array and only writes past len(m.events), which m never reads.
func (m *memoryState) clone() *memoryState {
	c := &memoryState{
		dice:        make(map[uint64]schema.Dice, len(m.dice)),
		custodies:   make(map[custodyKey]schema.Custody, len(m.custodies)),
		battlePairs: make(map[string]schema.BattlePair, len(m.battlePairs)),
		listings:    make(map[uint64]schema.Listing, len(m.listings)),
		accounts:    make(map[string]schema.Account, len(m.accounts)),
		keyValues:   make(map[string]schema.KeyValueStore, len(m.keyValues)),
		events:      m.events,
		nextSeq:     m.nextSeq,
	}
	for k, v := range m.dice {
		c.dice[k] = v
	}
	for k, v := range m.custodies {
		c.custodies[k] = v
	}
	for k, v := range m.battlePairs {
		c.battlePairs[k] = v
	}
	for k, v := range m.listings {
		c.listings[k] = v
	}
	for k, v := range m.accounts {
		c.accounts[k] = v
	}
	for k, v := range m.keyValues {
		c.keyValues[k] = v
	}
	return c
}

type memoryStore struct {
	// mu guards state. It is nil for a transactional view, which runs under the parent's lock.
	mu    *sync.RWMutex
	state *memoryState
}

// NewMemoryStore creates an in-process store, used when no database is configured
func NewMemoryStore() Store {
	return &memoryStore{
		mu:    &sync.RWMutex{},
		state: newMemoryState(),
	}
}

func (s *memoryStore) read() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *memoryStore) write() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Transaction runs fn against a copy of the state and swaps it in on success
func (s *memoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.mu == nil {
		// nested transactions share the outer copy
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryStore{state: s.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = tx.state
	return nil
}

// =============================================================================
// Dice
// =============================================================================

func (s *memoryStore) NextDiceID(ctx context.Context) (uint64, error) {
	defer s.write()()

	var id uint64
	if kv, ok := s.state.keyValues[KeyDiceSequence]; ok {
		var err error
		id, err = strconv.ParseUint(kv.Value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse dice sequence: %w", err)
		}
	}
	s.setKeyValue(KeyDiceSequence, strconv.FormatUint(id+1, 10))
	return id, nil
}

func (s *memoryStore) CreateDice(ctx context.Context, dice *schema.Dice) error {
	defer s.write()()

	if _, exists := s.state.dice[dice.ID]; exists {
		return fmt.Errorf("failed to create dice: dice %d already exists", dice.ID)
	}
	now := time.Now().UTC()
	if dice.CreatedAt.IsZero() {
		dice.CreatedAt = now
	}
	dice.UpdatedAt = now
	s.state.dice[dice.ID] = *dice
	return nil
}

func (s *memoryStore) GetDice(ctx context.Context, id uint64) (*schema.Dice, error) {
	defer s.read()()

	dice, ok := s.state.dice[id]
	if !ok {
		return nil, nil
	}
	return &dice, nil
}

func (s *memoryStore) UpdateDiceOwner(ctx context.Context, id uint64, owner string) error {
	defer s.write()()

	dice, ok := s.state.dice[id]
	if !ok {
		return fmt.Errorf("failed to update dice owner: dice %d not found", id)
	}
	dice.Owner = owner
	dice.UpdatedAt = time.Now().UTC()
	s.state.dice[id] = dice
	return nil
}

func (s *memoryStore) CountDice(ctx context.Context) (uint64, error) {
	defer s.read()()

	return uint64(len(s.state.dice)), nil
}

func (s *memoryStore) GetDiceByOwner(ctx context.Context, owner string, limit, offset int) ([]*schema.Dice, uint64, error) {
	defer s.read()()

	var owned []*schema.Dice
	for _, dice := range s.state.dice {
		if dice.Owner == owner {
			d := dice
			owned = append(owned, &d)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	return paginate(owned, limit, offset), uint64(len(owned)), nil
}

// =============================================================================
// Custody
// =============================================================================

func (s *memoryStore) GetCustody(ctx context.Context, custodian string, diceID uint64) (*schema.Custody, error) {
	defer s.read()()

	custody, ok := s.state.custodies[custodyKey{custodian, diceID}]
	if !ok {
		return nil, nil
	}
	return &custody, nil
}

func (s *memoryStore) GetCustodiesByDepositor(ctx context.Context, custodian, depositor string) ([]*schema.Custody, error) {
	defer s.read()()

	var custodies []*schema.Custody
	for key, custody := range s.state.custodies {
		if key.custodian == custodian && custody.Depositor == depositor {
			c := custody
			custodies = append(custodies, &c)
		}
	}
	sort.Slice(custodies, func(i, j int) bool { return custodies[i].DiceID < custodies[j].DiceID })
	return custodies, nil
}

func (s *memoryStore) CreateCustody(ctx context.Context, custody *schema.Custody) error {
	defer s.write()()

	if custody.CreatedAt.IsZero() {
		custody.CreatedAt = time.Now().UTC()
	}
	s.state.custodies[custodyKey{custody.Custodian, custody.DiceID}] = *custody
	return nil
}

func (s *memoryStore) DeleteCustody(ctx context.Context, custodian string, diceID uint64) error {
	defer s.write()()

	delete(s.state.custodies, custodyKey{custodian, diceID})
	return nil
}

// =============================================================================
// Battle pairs
// =============================================================================

func (s *memoryStore) GetBattlePair(ctx context.Context, account string) (*schema.BattlePair, error) {
	defer s.read()()

	pair, ok := s.state.battlePairs[account]
	if !ok {
		return nil, nil
	}
	return &pair, nil
}

func (s *memoryStore) SetBattlePair(ctx context.Context, account, opponent string) error {
	defer s.write()()

	s.state.battlePairs[account] = schema.BattlePair{
		Account:   account,
		Opponent:  opponent,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// =============================================================================
// Listings
// =============================================================================

func (s *memoryStore) GetListing(ctx context.Context, diceID uint64) (*schema.Listing, error) {
	defer s.read()()

	listing, ok := s.state.listings[diceID]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

func (s *memoryStore) UpsertListing(ctx context.Context, listing *schema.Listing) error {
	defer s.write()()

	now := time.Now().UTC()
	if existing, ok := s.state.listings[listing.DiceID]; ok {
		listing.CreatedAt = existing.CreatedAt
	} else if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now
	s.state.listings[listing.DiceID] = *listing
	return nil
}

func (s *memoryStore) DeleteListing(ctx context.Context, diceID uint64) error {
	defer s.write()()

	delete(s.state.listings, diceID)
	return nil
}

func (s *memoryStore) GetListings(ctx context.Context, filter ListingFilter) ([]*schema.Listing, uint64, error) {
	defer s.read()()

	var listings []*schema.Listing
	for _, listing := range s.state.listings {
		if filter.Seller != nil && listing.Seller != *filter.Seller {
			continue
		}
		l := listing
		listings = append(listings, &l)
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].DiceID < listings[j].DiceID })

	return paginate(listings, filter.Limit, filter.Offset), uint64(len(listings)), nil
}

// =============================================================================
// Accounts
// =============================================================================

func (s *memoryStore) GetBalance(ctx context.Context, address string) (string, error) {
	defer s.read()()

	account, ok := s.state.accounts[address]
	if !ok {
		return "0", nil
	}
	return account.Balance, nil
}

func (s *memoryStore) SetBalance(ctx context.Context, address, balance string) error {
	defer s.write()()

	s.state.accounts[address] = schema.Account{
		Address:   address,
		Balance:   balance,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// =============================================================================
// Key-value
// =============================================================================

func (s *memoryStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	defer s.read()()

	return s.state.keyValues[key].Value, nil
}

func (s *memoryStore) SetKeyValue(ctx context.Context, key, value string) error {
	defer s.write()()

	s.setKeyValue(key, value)
	return nil
}

// setKeyValue must be called with the write lock held
func (s *memoryStore) setKeyValue(key, value string) {
	now := time.Now().UTC()
	kv, ok := s.state.keyValues[key]
	if !ok {
		kv = schema.KeyValueStore{Key: key, CreatedAt: now}
	}
	kv.Value = value
	kv.UpdatedAt = now
	s.state.keyValues[key] = kv
}

// =============================================================================
// Event journal
// =============================================================================

func (s *memoryStore) AppendEvents(ctx context.Context, events []*schema.Event) error {
	defer s.write()()

	for _, event := range events {
		event.Seq = s.state.nextSeq
		s.state.nextSeq++
		if event.CreatedAt.IsZero() {
			event.CreatedAt = time.Now().UTC()
		}
		s.state.events = append(s.state.events, *event)
	}
	return nil
}

func (s *memoryStore) GetEventsAfter(ctx context.Context, seq uint64, limit int) ([]*schema.Event, error) {
	defer s.read()()

	// seq values are dense from 1, so the first event after seq sits at index seq
	limit = normalizeLimit(limit)
	var events []*schema.Event
	for i := seq; i < uint64(len(s.state.events)) && len(events) < limit; i++ {
		e := s.state.events[i]
		events = append(events, &e)
	}
	return events, nil
}

func (s *memoryStore) GetEventCursor(ctx context.Context, name string) (uint64, error) {
	value, err := s.GetKeyValue(ctx, eventCursorKey(name))
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}

	seq, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse event cursor: %w", err)
	}
	return seq, nil
}

func (s *memoryStore) SetEventCursor(ctx context.Context, name string, seq uint64) error {
	return s.SetKeyValue(ctx, eventCursorKey(name), strconv.FormatUint(seq, 10))
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + normalizeLimit(limit)
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
