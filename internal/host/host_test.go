package host

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/store"
)

var (
	alice    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob      = common.HexToAddress("0x2222222222222222222222222222222222222222")
	contract = common.HexToAddress("0x3333333333333333333333333333333333333333")
	other    = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func setupTestHost(t *testing.T) (Host, store.Store) {
	st := store.NewMemoryStore()
	h := New(st, adapter.NewClock())
	require.NoError(t, h.Fund(context.Background(), alice, uint256.NewInt(1000)))
	return h, st
}

func transferEvent(id domain.DiceID, from, to common.Address) *domain.Event {
	return &domain.Event{
		Type:   domain.EventTypeDiceTransferred,
		DiceID: domain.DiceIDPtr(id),
		From:   domain.AddressPtr(from),
		To:     domain.AddressPtr(to),
	}
}

func balance(t *testing.T, h Host, address common.Address) uint64 {
	b, err := h.BalanceOf(context.Background(), address)
	require.NoError(t, err)
	return b.Uint64()
}

func TestExecuteCommits(t *testing.T) {
	ctx := context.Background()
	h, st := setupTestHost(t)

	receipt, err := h.Execute(ctx, Message{From: alice, To: contract, Value: uint256.NewInt(300)}, func(ctx context.Context, call *Call) error {
		assert.Equal(t, alice, call.Caller)
		assert.Equal(t, contract, call.Self)
		assert.Equal(t, uint64(300), call.Value.Uint64())
		call.Emit(transferEvent(1, alice, bob))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)

	event := receipt.Events[0]
	assert.Equal(t, contract, event.Contract)
	assert.Equal(t, receipt.TxHash, event.TxHash)
	assert.NotEmpty(t, event.ID)
	assert.NotZero(t, event.Seq)
	assert.False(t, event.Timestamp.IsZero())

	assert.Equal(t, uint64(700), balance(t, h, alice))
	assert.Equal(t, uint64(300), balance(t, h, contract))

	rows, err := st.GetEventsAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, event.ID, rows[0].EventID)
}

func TestExecuteRevertsEverything(t *testing.T) {
	ctx := context.Background()
	h, st := setupTestHost(t)
	errBoom := errors.New("boom")

	_, err := h.Execute(ctx, Message{From: alice, To: contract, Value: uint256.NewInt(300)}, func(ctx context.Context, call *Call) error {
		call.Emit(transferEvent(1, alice, bob))
		if err := call.Store.SetKeyValue(ctx, "test:key", "dirty"); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	assert.Equal(t, uint64(1000), balance(t, h, alice))
	assert.Equal(t, uint64(0), balance(t, h, contract))

	rows, err := st.GetEventsAfter(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	value, err := st.GetKeyValue(ctx, "test:key")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestExecuteInsufficientFunds(t *testing.T) {
	h, _ := setupTestHost(t)

	called := false
	_, err := h.Execute(context.Background(), Message{From: bob, To: contract, Value: uint256.NewInt(1)}, func(ctx context.Context, call *Call) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.False(t, called)
}

func TestExecuteRejectsZeroSender(t *testing.T) {
	h, _ := setupTestHost(t)

	_, err := h.Execute(context.Background(), Message{To: contract}, func(ctx context.Context, call *Call) error {
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestExecuteRejectsInvalidEvent(t *testing.T) {
	h, _ := setupTestHost(t)

	_, err := h.Execute(context.Background(), Message{From: alice, To: contract}, func(ctx context.Context, call *Call) error {
		call.Emit(&domain.Event{Type: domain.EventTypeDiceTransferred})
		return nil
	})
	assert.Error(t, err)
}

func TestTransactionHashesAreUnique(t *testing.T) {
	ctx := context.Background()
	h, _ := setupTestHost(t)
	noop := func(ctx context.Context, call *Call) error { return nil }

	first, err := h.Execute(ctx, Message{From: alice, To: contract}, noop)
	require.NoError(t, err)
	second, err := h.Execute(ctx, Message{From: alice, To: contract}, noop)
	require.NoError(t, err)

	assert.NotEqual(t, first.TxHash, second.TxHash)
}

func TestCallForwardAndPay(t *testing.T) {
	ctx := context.Background()
	h, _ := setupTestHost(t)

	receipt, err := h.Execute(ctx, Message{From: alice, To: contract, Value: uint256.NewInt(500)}, func(ctx context.Context, call *Call) error {
		inner := call.Forward(other)
		assert.Equal(t, contract, inner.Caller)
		assert.Equal(t, other, inner.Self)
		assert.True(t, inner.Value.IsZero())
		assert.NoError(t, inner.NonPayable())
		inner.Emit(transferEvent(2, contract, other))

		if err := call.Pay(ctx, bob, uint256.NewInt(200)); err != nil {
			return err
		}
		call.Emit(transferEvent(3, alice, contract))
		assert.Len(t, call.Events(), 2)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 2)
	assert.Equal(t, other, receipt.Events[0].Contract)
	assert.Equal(t, contract, receipt.Events[1].Contract)
	assert.Less(t, receipt.Events[0].Seq, receipt.Events[1].Seq)

	assert.Equal(t, uint64(500), balance(t, h, alice))
	assert.Equal(t, uint64(300), balance(t, h, contract))
	assert.Equal(t, uint64(200), balance(t, h, bob))
}

func TestPayMoreThanHeld(t *testing.T) {
	h, _ := setupTestHost(t)

	_, err := h.Execute(context.Background(), Message{From: alice, To: contract, Value: uint256.NewInt(10)}, func(ctx context.Context, call *Call) error {
		return call.Pay(ctx, bob, uint256.NewInt(11))
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, uint64(1000), balance(t, h, alice))
}

func TestNonPayable(t *testing.T) {
	call := &Call{Value: uint256.NewInt(1)}
	assert.ErrorIs(t, call.NonPayable(), domain.ErrNonPayable)

	call = &Call{}
	assert.NoError(t, call.NonPayable())
}

func TestFundAndTotalSupply(t *testing.T) {
	ctx := context.Background()
	h, _ := setupTestHost(t)

	require.NoError(t, h.Fund(ctx, bob, uint256.NewInt(50)))
	require.NoError(t, h.Fund(ctx, bob, nil))

	supply, err := h.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1050), supply.Uint64())
	assert.Equal(t, uint64(50), balance(t, h, bob))

	assert.ErrorIs(t, h.Fund(ctx, common.Address{}, uint256.NewInt(1)), domain.ErrInvalidAddress)

	maxSupply := new(uint256.Int).SetAllOne()
	assert.ErrorIs(t, h.Fund(ctx, bob, maxSupply), ErrSupplyOverflow)
}

func TestViewNeverCommits(t *testing.T) {
	ctx := context.Background()
	h, st := setupTestHost(t)

	err := h.View(ctx, func(tx store.Store) error {
		return tx.SetKeyValue(ctx, "test:view", "written")
	})
	require.NoError(t, err)

	value, err := st.GetKeyValue(ctx, "test:view")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	errBoom := errors.New("boom")
	assert.ErrorIs(t, h.View(ctx, func(tx store.Store) error { return errBoom }), errBoom)
}
