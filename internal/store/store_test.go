package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

const (
	testOwnerA    = "0x1111111111111111111111111111111111111111"
	testOwnerB    = "0x2222222222222222222222222222222222222222"
	testCustodian = "0x3333333333333333333333333333333333333333"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestDice creates a dice record owned by owner
func buildTestDice(id uint64, owner string) *schema.Dice {
	return &schema.Dice{
		ID:            id,
		Power:         6,
		Kind:          1,
		Owner:         owner,
		CreationValue: "1000000000000000000",
	}
}

// buildTestEvent creates a journal event
func buildTestEvent(eventID, eventType string, diceID *uint64) *schema.Event {
	return &schema.Event{
		EventID:   eventID,
		EventType: eventType,
		Contract:  testCustodian,
		TxHash:    "0xabc",
		DiceID:    diceID,
		Payload:   datatypes.JSON(`{"type":"` + eventType + `"}`),
	}
}

// mintTestDice reserves an id and creates a dice
func mintTestDice(t *testing.T, store Store, owner string) *schema.Dice {
	ctx := context.Background()

	id, err := store.NextDiceID(ctx)
	require.NoError(t, err)
	dice := buildTestDice(id, owner)
	require.NoError(t, store.CreateDice(ctx, dice))
	return dice
}

// =============================================================================
// Test: Dice
// =============================================================================

func testDice(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("ids are sequential from zero", func(t *testing.T) {
		first, err := store.NextDiceID(ctx)
		require.NoError(t, err)
		second, err := store.NextDiceID(ctx)
		require.NoError(t, err)

		assert.Equal(t, uint64(0), first)
		assert.Equal(t, first+1, second)
	})

	t.Run("create and get", func(t *testing.T) {
		dice := buildTestDice(100, testOwnerA)
		require.NoError(t, store.CreateDice(ctx, dice))

		got, err := store.GetDice(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(100), got.ID)
		assert.Equal(t, uint8(6), got.Power)
		assert.Equal(t, uint8(1), got.Kind)
		assert.Equal(t, testOwnerA, got.Owner)
		assert.Equal(t, "1000000000000000000", got.CreationValue)
	})

	t.Run("get unknown dice returns nil", func(t *testing.T) {
		got, err := store.GetDice(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		require.NoError(t, store.CreateDice(ctx, buildTestDice(200, testOwnerA)))

		// run the failing insert in its own transaction so the outer one stays usable
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.CreateDice(ctx, buildTestDice(200, testOwnerB))
		})
		assert.Error(t, err)

		got, err := store.GetDice(ctx, 200)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testOwnerA, got.Owner)
	})

	t.Run("update owner", func(t *testing.T) {
		require.NoError(t, store.CreateDice(ctx, buildTestDice(300, testOwnerA)))
		require.NoError(t, store.UpdateDiceOwner(ctx, 300, testOwnerB))

		got, err := store.GetDice(ctx, 300)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testOwnerB, got.Owner)
	})

	t.Run("update owner of unknown dice fails", func(t *testing.T) {
		assert.Error(t, store.UpdateDiceOwner(ctx, 9999, testOwnerB))
	})

	t.Run("count and list by owner", func(t *testing.T) {
		before, err := store.CountDice(ctx)
		require.NoError(t, err)

		for i := uint64(400); i < 405; i++ {
			require.NoError(t, store.CreateDice(ctx, buildTestDice(i, testCustodian)))
		}

		count, err := store.CountDice(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+5, count)

		page, total, err := store.GetDiceByOwner(ctx, testCustodian, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		require.Len(t, page, 2)
		assert.Equal(t, uint64(401), page[0].ID)
		assert.Equal(t, uint64(402), page[1].ID)

		page, total, err = store.GetDiceByOwner(ctx, "0x9999999999999999999999999999999999999999", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
		assert.Empty(t, page)
	})
}

// =============================================================================
// Test: Custody
// =============================================================================

func testCustody(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create get and delete", func(t *testing.T) {
		dice := mintTestDice(t, store, testCustodian)

		got, err := store.GetCustody(ctx, testCustodian, dice.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{
			Custodian: testCustodian,
			DiceID:    dice.ID,
			Depositor: testOwnerA,
		}))

		got, err = store.GetCustody(ctx, testCustodian, dice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testOwnerA, got.Depositor)

		require.NoError(t, store.DeleteCustody(ctx, testCustodian, dice.ID))
		got, err = store.GetCustody(ctx, testCustodian, dice.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("redeposit replaces depositor", func(t *testing.T) {
		dice := mintTestDice(t, store, testCustodian)

		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{Custodian: testCustodian, DiceID: dice.ID, Depositor: testOwnerA}))
		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{Custodian: testCustodian, DiceID: dice.ID, Depositor: testOwnerB}))

		got, err := store.GetCustody(ctx, testCustodian, dice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testOwnerB, got.Depositor)
	})

	t.Run("custody is scoped to the custodian", func(t *testing.T) {
		dice := mintTestDice(t, store, testCustodian)
		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{Custodian: testCustodian, DiceID: dice.ID, Depositor: testOwnerA}))

		got, err := store.GetCustody(ctx, testOwnerB, dice.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by depositor", func(t *testing.T) {
		const depositor = "0x4444444444444444444444444444444444444444"
		first := mintTestDice(t, store, testCustodian)
		second := mintTestDice(t, store, testCustodian)
		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{Custodian: testCustodian, DiceID: second.ID, Depositor: depositor}))
		require.NoError(t, store.CreateCustody(ctx, &schema.Custody{Custodian: testCustodian, DiceID: first.ID, Depositor: depositor}))

		custodies, err := store.GetCustodiesByDepositor(ctx, testCustodian, depositor)
		require.NoError(t, err)
		require.Len(t, custodies, 2)
		assert.Equal(t, first.ID, custodies[0].DiceID)
		assert.Equal(t, second.ID, custodies[1].DiceID)
	})
}

// =============================================================================
// Test: Battle pairs
// =============================================================================

func testBattlePairs(t *testing.T, store Store) {
	ctx := context.Background()

	pair, err := store.GetBattlePair(ctx, testOwnerA)
	require.NoError(t, err)
	assert.Nil(t, pair)

	require.NoError(t, store.SetBattlePair(ctx, testOwnerA, testOwnerB))
	pair, err = store.GetBattlePair(ctx, testOwnerA)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, testOwnerB, pair.Opponent)

	require.NoError(t, store.SetBattlePair(ctx, testOwnerA, testCustodian))
	pair, err = store.GetBattlePair(ctx, testOwnerA)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, testCustodian, pair.Opponent)

	// pairing is one-directional
	pair, err = store.GetBattlePair(ctx, testOwnerB)
	require.NoError(t, err)
	assert.Nil(t, pair)
}

// =============================================================================
// Test: Listings
// =============================================================================

func testListings(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert get and delete", func(t *testing.T) {
		dice := mintTestDice(t, store, testCustodian)

		require.NoError(t, store.UpsertListing(ctx, &schema.Listing{DiceID: dice.ID, Seller: testOwnerA, Price: 1001}))
		listing, err := store.GetListing(ctx, dice.ID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, uint64(1001), listing.Price)
		assert.Equal(t, testOwnerA, listing.Seller)

		require.NoError(t, store.UpsertListing(ctx, &schema.Listing{DiceID: dice.ID, Seller: testOwnerA, Price: 2000}))
		listing, err = store.GetListing(ctx, dice.ID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, uint64(2000), listing.Price)

		require.NoError(t, store.DeleteListing(ctx, dice.ID))
		listing, err = store.GetListing(ctx, dice.ID)
		require.NoError(t, err)
		assert.Nil(t, listing)
	})

	t.Run("filter by seller", func(t *testing.T) {
		const seller = "0x5555555555555555555555555555555555555555"
		first := mintTestDice(t, store, testCustodian)
		second := mintTestDice(t, store, testCustodian)
		other := mintTestDice(t, store, testCustodian)
		require.NoError(t, store.UpsertListing(ctx, &schema.Listing{DiceID: second.ID, Seller: seller, Price: 5}))
		require.NoError(t, store.UpsertListing(ctx, &schema.Listing{DiceID: first.ID, Seller: seller, Price: 7}))
		require.NoError(t, store.UpsertListing(ctx, &schema.Listing{DiceID: other.ID, Seller: testOwnerB, Price: 9}))

		s := seller
		listings, total, err := store.GetListings(ctx, ListingFilter{Seller: &s, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, listings, 2)
		assert.Equal(t, first.ID, listings[0].DiceID)
		assert.Equal(t, second.ID, listings[1].DiceID)

		listings, total, err = store.GetListings(ctx, ListingFilter{Seller: &s, Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, listings, 1)
		assert.Equal(t, second.ID, listings[0].DiceID)
	})
}

// =============================================================================
// Test: Accounts
// =============================================================================

func testBalances(t *testing.T, store Store) {
	ctx := context.Background()

	balance, err := store.GetBalance(ctx, testOwnerA)
	require.NoError(t, err)
	assert.Equal(t, "0", balance)

	require.NoError(t, store.SetBalance(ctx, testOwnerA, "115792089237316195423570985008687907853269984665640564039457584007913129639935"))
	balance, err = store.GetBalance(ctx, testOwnerA)
	require.NoError(t, err)
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", balance)

	require.NoError(t, store.SetBalance(ctx, testOwnerA, "42"))
	balance, err = store.GetBalance(ctx, testOwnerA)
	require.NoError(t, err)
	assert.Equal(t, "42", balance)
}

// =============================================================================
// Test: Key-value
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "test:missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetKeyValue(ctx, "test:key", "one"))
	require.NoError(t, store.SetKeyValue(ctx, "test:key", "two"))
	value, err = store.GetKeyValue(ctx, "test:key")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

// =============================================================================
// Test: Event journal
// =============================================================================

func testEventJournal(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("append assigns increasing seq", func(t *testing.T) {
		existing, err := store.GetEventsAfter(ctx, 0, 1000)
		require.NoError(t, err)
		var last uint64
		if len(existing) > 0 {
			last = existing[len(existing)-1].Seq
		}

		diceID := uint64(7)
		events := []*schema.Event{
			buildTestEvent("01JTESTEVENT0000000000000A", "dice_created", &diceID),
			buildTestEvent("01JTESTEVENT0000000000000B", "pairing_set", nil),
			buildTestEvent("01JTESTEVENT0000000000000C", "dice_transferred", &diceID),
		}
		require.NoError(t, store.AppendEvents(ctx, events))
		assert.Greater(t, events[0].Seq, last)
		assert.Greater(t, events[1].Seq, events[0].Seq)
		assert.Greater(t, events[2].Seq, events[1].Seq)

		got, err := store.GetEventsAfter(ctx, events[0].Seq, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "01JTESTEVENT0000000000000B", got[0].EventID)
		assert.Nil(t, got[0].DiceID)
		assert.Equal(t, "01JTESTEVENT0000000000000C", got[1].EventID)
		require.NotNil(t, got[1].DiceID)
		assert.Equal(t, diceID, *got[1].DiceID)
		assert.JSONEq(t, `{"type":"dice_transferred"}`, string(got[1].Payload))

		got, err = store.GetEventsAfter(ctx, last, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, events[0].Seq, got[0].Seq)
	})

	t.Run("append nothing is a no-op", func(t *testing.T) {
		assert.NoError(t, store.AppendEvents(ctx, nil))
	})

	t.Run("cursors are named", func(t *testing.T) {
		seq, err := store.GetEventCursor(ctx, "test-relay")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), seq)

		require.NoError(t, store.SetEventCursor(ctx, "test-relay", 12))
		require.NoError(t, store.SetEventCursor(ctx, "other-relay", 3))

		seq, err = store.GetEventCursor(ctx, "test-relay")
		require.NoError(t, err)
		assert.Equal(t, uint64(12), seq)
	})
}

// =============================================================================
// Test: Transaction
// =============================================================================

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("commit applies all changes", func(t *testing.T) {
		var id uint64
		err := store.Transaction(ctx, func(tx Store) error {
			var err error
			id, err = tx.NextDiceID(ctx)
			if err != nil {
				return err
			}
			if err := tx.CreateDice(ctx, buildTestDice(id, testOwnerA)); err != nil {
				return err
			}
			return tx.SetBalance(ctx, testOwnerA, "10")
		})
		require.NoError(t, err)

		dice, err := store.GetDice(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, dice)
		balance, err := store.GetBalance(ctx, testOwnerA)
		require.NoError(t, err)
		assert.Equal(t, "10", balance)
	})

	t.Run("error rolls back all changes", func(t *testing.T) {
		before, err := store.CountDice(ctx)
		require.NoError(t, err)
		nextBefore, err := store.GetKeyValue(ctx, KeyDiceSequence)
		require.NoError(t, err)

		errAbort := errors.New("abort")
		err = store.Transaction(ctx, func(tx Store) error {
			id, err := tx.NextDiceID(ctx)
			if err != nil {
				return err
			}
			if err := tx.CreateDice(ctx, buildTestDice(id, testOwnerB)); err != nil {
				return err
			}
			if err := tx.SetBalance(ctx, testOwnerB, "99"); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		after, err := store.CountDice(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		nextAfter, err := store.GetKeyValue(ctx, KeyDiceSequence)
		require.NoError(t, err)
		assert.Equal(t, nextBefore, nextAfter)
		balance, err := store.GetBalance(ctx, testOwnerB)
		require.NoError(t, err)
		assert.Equal(t, "0", balance)
	})

	t.Run("nested transaction shares the outer view", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			if err := tx.SetKeyValue(ctx, "test:nested", "outer"); err != nil {
				return err
			}
			return tx.Transaction(ctx, func(inner Store) error {
				value, err := inner.GetKeyValue(ctx, "test:nested")
				if err != nil {
					return err
				}
				assert.Equal(t, "outer", value)
				return inner.SetKeyValue(ctx, "test:nested", "inner")
			})
		})
		require.NoError(t, err)

		value, err := store.GetKeyValue(ctx, "test:nested")
		require.NoError(t, err)
		assert.Equal(t, "inner", value)
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Dice", testDice},
		{"Custody", testCustody},
		{"BattlePairs", testBattlePairs},
		{"Listings", testListings},
		{"Balances", testBalances},
		{"KeyValueStore", testKeyValueStore},
		{"EventJournal", testEventJournal},
		{"Transaction", testTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
