package host

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/store/schema"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

// ErrSupplyOverflow is returned when funding would overflow the total supply
var ErrSupplyOverflow = errors.New("total supply overflow")

// Message is an external call into a contract
type Message struct {
	From  common.Address
	To    common.Address
	Value *uint256.Int
}

// Receipt describes a committed transaction
type Receipt struct {
	TxHash common.Hash     `json:"tx_hash"`
	Events []*domain.Event `json:"events"`
}

// Handler is the body of a contract operation
type Handler func(ctx context.Context, call *Call) error

// Host executes contract operations atomically.
// Each Execute is one transaction: value transfer, state changes and events commit together or not at all.
//
//go:generate mockgen -source=host.go -destination=../mocks/host.go -package=mocks -mock_names=Host=MockHost
type Host interface {
	// Execute runs fn as msg.To on behalf of msg.From with msg.Value attached
	Execute(ctx context.Context, msg Message, fn Handler) (*Receipt, error)
	// View runs fn against a consistent snapshot without committing anything
	View(ctx context.Context, fn func(st store.Store) error) error
	// Fund mints native currency to an address
	Fund(ctx context.Context, to common.Address, amount *uint256.Int) error
	// BalanceOf returns the wei balance of an address
	BalanceOf(ctx context.Context, address common.Address) (*uint256.Int, error)
	// TotalSupply returns the total wei in circulation
	TotalSupply(ctx context.Context) (*uint256.Int, error)
}

// errView aborts the transaction used by View
var errView = errors.New("view")

type host struct {
	mu    sync.Mutex
	store store.Store
	clock adapter.Clock
}

// New creates a new host over a store
func New(st store.Store, clock adapter.Clock) Host {
	return &host{
		store: st,
		clock: clock,
	}
}

// Execute runs a contract operation in a single transaction
func (h *host) Execute(ctx context.Context, msg Message, fn Handler) (*Receipt, error) {
	if domain.IsZeroAddress(msg.From) {
		return nil, fmt.Errorf("%w: zero sender", domain.ErrInvalidAddress)
	}
	value := msg.Value
	if value == nil {
		value = new(uint256.Int)
	}

	// calls are serialized so the nonce and balances observed by a call are never stale
	h.mu.Lock()
	defer h.mu.Unlock()

	var receipt *Receipt
	err := h.store.Transaction(ctx, func(tx store.Store) error {
		nonce, err := nextNonce(ctx, tx)
		if err != nil {
			return err
		}

		txHash := transactionHash(msg.From, msg.To, nonce)
		if err := transfer(ctx, tx, msg.From, msg.To, value); err != nil {
			return err
		}

		var events []*domain.Event
		call := &Call{
			Caller: msg.From,
			Self:   msg.To,
			Value:  value,
			TxHash: txHash,
			Store:  tx,
			events: &events,
		}
		if err := fn(ctx, call); err != nil {
			return err
		}

		if err := h.journal(ctx, tx, events); err != nil {
			return err
		}

		receipt = &Receipt{TxHash: txHash, Events: events}
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Call reverted",
			zap.String("from", msg.From.Hex()),
			zap.String("to", msg.To.Hex()),
			zap.String("value", value.Dec()),
			zap.Error(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Call committed",
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Int("events", len(receipt.Events)))

	return receipt, nil
}

// journal stamps and appends events to the journal of the transaction
func (h *host) journal(ctx context.Context, tx store.Store, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	now := h.clock.Now().UTC()
	rows := make([]*schema.Event, 0, len(events))
	for _, event := range events {
		if !event.Valid() {
			return fmt.Errorf("invalid %s event", event.Type)
		}
		event.ID = ulid.MustNewDefault(now).String()
		event.Timestamp = now

		row, err := types.EventToSchema(event)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if err := tx.AppendEvents(ctx, rows); err != nil {
		return err
	}
	for i, row := range rows {
		events[i].Seq = row.Seq
	}

	return nil
}

// View runs fn inside a transaction that is always rolled back
func (h *host) View(ctx context.Context, fn func(st store.Store) error) error {
	err := h.store.Transaction(ctx, func(tx store.Store) error {
		if err := fn(tx); err != nil {
			return err
		}
		return errView
	})
	if errors.Is(err, errView) {
		return nil
	}
	return err
}

// Fund mints native currency to an address, increasing the total supply
func (h *host) Fund(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(to) {
		return fmt.Errorf("%w: zero recipient", domain.ErrInvalidAddress)
	}
	if amount == nil || amount.IsZero() {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.store.Transaction(ctx, func(tx store.Store) error {
		supply, err := totalSupply(ctx, tx)
		if err != nil {
			return err
		}
		supply, overflow := new(uint256.Int).AddOverflow(supply, amount)
		if overflow {
			return ErrSupplyOverflow
		}

		balance, err := balanceOf(ctx, tx, to)
		if err != nil {
			return err
		}
		balance = new(uint256.Int).Add(balance, amount)

		if err := tx.SetBalance(ctx, to.Hex(), balance.Dec()); err != nil {
			return err
		}
		if err := tx.SetKeyValue(ctx, store.KeyTotalSupply, supply.Dec()); err != nil {
			return err
		}

		logger.InfoCtx(ctx, "Funded account",
			zap.String("address", to.Hex()),
			zap.String("amount", amount.Dec()))
		return nil
	})
}

// BalanceOf returns the wei balance of an address
func (h *host) BalanceOf(ctx context.Context, address common.Address) (*uint256.Int, error) {
	return balanceOf(ctx, h.store, address)
}

// TotalSupply returns the total wei in circulation
func (h *host) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	return totalSupply(ctx, h.store)
}

func totalSupply(ctx context.Context, st store.Store) (*uint256.Int, error) {
	raw, err := st.GetKeyValue(ctx, store.KeyTotalSupply)
	if err != nil {
		return nil, err
	}
	return types.ParseWei(raw)
}

func nextNonce(ctx context.Context, tx store.Store) (uint64, error) {
	raw, err := tx.GetKeyValue(ctx, store.KeyCallNonce)
	if err != nil {
		return 0, err
	}

	var nonce uint64
	if raw != "" {
		nonce, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse call nonce: %w", err)
		}
	}

	if err := tx.SetKeyValue(ctx, store.KeyCallNonce, strconv.FormatUint(nonce+1, 10)); err != nil {
		return 0, err
	}
	return nonce, nil
}

// transactionHash derives a unique hash for a call from its sender, target and nonce
func transactionHash(from, to common.Address, nonce uint64) common.Hash {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	return crypto.Keccak256Hash(from.Bytes(), to.Bytes(), n[:])
}
