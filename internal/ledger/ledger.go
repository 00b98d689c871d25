package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

// Receiver is a contract that takes custody of dice transferred to it.
// OnDiceReceived runs inside the transfer call, with call.Caller set to the ledger.
type Receiver interface {
	OnDiceReceived(ctx context.Context, call *host.Call, diceID domain.DiceID, from common.Address) error
}

// AssetLedger is the canonical registry of dice and their owners
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=AssetLedger=MockAssetLedger,Receiver=MockReceiver
type AssetLedger interface {
	// Address returns the ledger's contract address
	Address() common.Address
	// MinMintPrice returns the minimum payment to mint a dice
	MinMintPrice() *uint256.Int

	// Add mints a dice owned by the caller, paid with the attached value
	Add(ctx context.Context, call *host.Call, power, kind uint8) (domain.DiceID, error)
	// Transfer moves a dice owned by the caller to a new owner
	Transfer(ctx context.Context, call *host.Call, diceID domain.DiceID, to common.Address) error

	// GetOwner returns the owner of a dice
	GetOwner(ctx context.Context, st store.Store, diceID domain.DiceID) (common.Address, error)
	// GetDice returns a dice record
	GetDice(ctx context.Context, st store.Store, diceID domain.DiceID) (*domain.Dice, error)
	// DiceByOwner returns dice owned by an address, ordered by id, with the total count
	DiceByOwner(ctx context.Context, st store.Store, owner common.Address, limit, offset int) ([]*domain.Dice, uint64, error)
	// Count returns the number of minted dice
	Count(ctx context.Context, st store.Store) (uint64, error)

	// RegisterReceiver registers a contract whose receive hook runs when it is sent a dice
	RegisterReceiver(address common.Address, receiver Receiver)
}

type ledger struct {
	address      common.Address
	minMintPrice *uint256.Int

	mu        sync.RWMutex
	receivers map[common.Address]Receiver
}

// New creates a ledger deployed at address
func New(address common.Address, minMintPrice *uint256.Int) AssetLedger {
	if minMintPrice == nil {
		minMintPrice = uint256.NewInt(domain.DEFAULT_MIN_MINT_PRICE)
	}
	return &ledger{
		address:      address,
		minMintPrice: new(uint256.Int).Set(minMintPrice),
		receivers:    make(map[common.Address]Receiver),
	}
}

func (l *ledger) Address() common.Address {
	return l.address
}

func (l *ledger) MinMintPrice() *uint256.Int {
	return new(uint256.Int).Set(l.minMintPrice)
}

func (l *ledger) RegisterReceiver(address common.Address, receiver Receiver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivers[address] = receiver
}

func (l *ledger) receiver(address common.Address) (Receiver, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.receivers[address]
	return r, ok
}

// Add mints a dice. The attached payment becomes its creation value and stays with the ledger.
func (l *ledger) Add(ctx context.Context, call *host.Call, power, kind uint8) (domain.DiceID, error) {
	if power == 0 || kind == 0 {
		return 0, domain.ErrInvalidAttributes
	}
	if call.Value == nil || call.Value.Lt(l.minMintPrice) {
		return 0, domain.ErrInsufficientPayment
	}

	id, err := call.Store.NextDiceID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve dice id: %w", err)
	}

	dice := &domain.Dice{
		ID:            domain.DiceID(id),
		Power:         power,
		Kind:          kind,
		Owner:         call.Caller,
		CreationValue: new(uint256.Int).Set(call.Value),
	}
	if err := call.Store.CreateDice(ctx, types.DiceToSchema(dice)); err != nil {
		return 0, fmt.Errorf("failed to create dice: %w", err)
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceCreated,
		DiceID: domain.DiceIDPtr(dice.ID),
		To:     domain.AddressPtr(dice.Owner),
		Amount: new(uint256.Int).Set(dice.CreationValue),
	})

	logger.InfoCtx(ctx, "Dice created",
		zap.Uint64("dice_id", id),
		zap.String("owner", dice.Owner.Hex()),
		zap.Uint8("power", power),
		zap.Uint8("kind", kind))

	return dice.ID, nil
}

// Transfer moves a dice to a new owner and runs the receive hook of a registered custodian
func (l *ledger) Transfer(ctx context.Context, call *host.Call, diceID domain.DiceID, to common.Address) error {
	if err := call.NonPayable(); err != nil {
		return err
	}
	if domain.IsZeroAddress(to) {
		return fmt.Errorf("%w: cannot transfer to the zero address", domain.ErrInvalidAddress)
	}
	if to == l.address {
		// nothing can call as the ledger, a dice sent to it could never leave
		return fmt.Errorf("%w: cannot transfer to the ledger", domain.ErrInvalidAddress)
	}

	owner, err := l.GetOwner(ctx, call.Store, diceID)
	if err != nil {
		return err
	}
	if owner != call.Caller {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotOwner)
	}

	if err := call.Store.UpdateDiceOwner(ctx, uint64(diceID), to.Hex()); err != nil {
		return fmt.Errorf("failed to transfer dice: %w", err)
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceTransferred,
		DiceID: domain.DiceIDPtr(diceID),
		From:   domain.AddressPtr(owner),
		To:     domain.AddressPtr(to),
	})

	if r, ok := l.receiver(to); ok {
		if err := r.OnDiceReceived(ctx, call.Forward(to), diceID, owner); err != nil {
			return fmt.Errorf("receiver %s rejected dice %s: %w", to.Hex(), diceID, err)
		}
	}

	logger.DebugCtx(ctx, "Dice transferred",
		zap.Uint64("dice_id", uint64(diceID)),
		zap.String("from", owner.Hex()),
		zap.String("to", to.Hex()))

	return nil
}

func (l *ledger) GetOwner(ctx context.Context, st store.Store, diceID domain.DiceID) (common.Address, error) {
	dice, err := l.GetDice(ctx, st, diceID)
	if err != nil {
		return common.Address{}, err
	}
	return dice.Owner, nil
}

func (l *ledger) GetDice(ctx context.Context, st store.Store, diceID domain.DiceID) (*domain.Dice, error) {
	row, err := st.GetDice(ctx, uint64(diceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get dice: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("dice %s: %w", diceID, domain.ErrUnknownAsset)
	}
	return types.DiceToDomain(row)
}

func (l *ledger) DiceByOwner(ctx context.Context, st store.Store, owner common.Address, limit, offset int) ([]*domain.Dice, uint64, error) {
	rows, total, err := st.GetDiceByOwner(ctx, owner.Hex(), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get dice by owner: %w", err)
	}

	dice := make([]*domain.Dice, 0, len(rows))
	for _, row := range rows {
		d, err := types.DiceToDomain(row)
		if err != nil {
			return nil, 0, err
		}
		dice = append(dice, d)
	}
	return dice, total, nil
}

func (l *ledger) Count(ctx context.Context, st store.Store) (uint64, error) {
	count, err := st.CountDice(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count dice: %w", err)
	}
	return count, nil
}
