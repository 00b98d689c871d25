package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/ledger"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/store/schema"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

// ErrPriceOverflow is returned when a price in units does not fit in wei
var ErrPriceOverflow = errors.New("price overflows wei")

// Config holds the immutable market parameters
type Config struct {
	// Commission is the operator fee per sale, in price units
	Commission uint64
	// PriceUnit is the number of wei per price unit
	PriceUnit *uint256.Int
	// Operator receives the commission of every sale
	Operator common.Address
}

// Market sells dice deposited by their owners, retaining a fixed commission per sale
//
//go:generate mockgen -source=market.go -destination=../mocks/market.go -package=mocks -mock_names=Market=MockMarket
type Market interface {
	ledger.Receiver

	// Address returns the market's contract address
	Address() common.Address
	// Commission returns the operator fee in price units
	Commission() uint64
	// PriceUnit returns the number of wei per price unit
	PriceUnit() *uint256.Int
	// Operator returns the account receiving commissions
	Operator() common.Address

	// List offers a deposited dice at price units, replacing any previous price
	List(ctx context.Context, call *host.Call, diceID domain.DiceID, price uint64) error
	// Unlist withdraws the caller's offer; the dice stays deposited
	Unlist(ctx context.Context, call *host.Call, diceID domain.DiceID) error
	// Buy purchases a listed dice with the attached value
	Buy(ctx context.Context, call *host.Call, diceID domain.DiceID) error
	// Withdraw returns an unlisted deposited dice to its depositor
	Withdraw(ctx context.Context, call *host.Call, diceID domain.DiceID) error

	// GetListing returns the active listing of a dice, nil if it is not listed
	GetListing(ctx context.Context, st store.Store, diceID domain.DiceID) (*domain.Listing, error)
	// Listings returns active listings ordered by dice id, optionally of one seller, with the total count
	Listings(ctx context.Context, st store.Store, seller *common.Address, limit, offset int) ([]*domain.Listing, uint64, error)
	// MinimumPrice returns the lowest accepted listing price of a dice, in price units
	MinimumPrice(ctx context.Context, st store.Store, diceID domain.DiceID) (uint64, error)
	// GetDepositor returns the account that deposited a dice, nil if the market does not hold it
	GetDepositor(ctx context.Context, st store.Store, diceID domain.DiceID) (*common.Address, error)
}

type market struct {
	address  common.Address
	ledger   ledger.AssetLedger
	cfg      Config
	unit     *uint256.Int
	feeInWei *uint256.Int
}

// New creates a market deployed at address over a ledger
func New(address common.Address, l ledger.AssetLedger, cfg Config) (Market, error) {
	unit := cfg.PriceUnit
	if unit == nil {
		unit = uint256.NewInt(domain.DEFAULT_PRICE_UNIT)
	}
	if unit.IsZero() {
		return nil, fmt.Errorf("price unit must be positive")
	}
	if domain.IsZeroAddress(cfg.Operator) {
		return nil, fmt.Errorf("%w: market operator", domain.ErrInvalidAddress)
	}

	fee, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(cfg.Commission), unit)
	if overflow {
		return nil, fmt.Errorf("commission: %w", ErrPriceOverflow)
	}

	return &market{
		address:  address,
		ledger:   l,
		cfg:      cfg,
		unit:     new(uint256.Int).Set(unit),
		feeInWei: fee,
	}, nil
}

func (m *market) Address() common.Address {
	return m.address
}

func (m *market) Commission() uint64 {
	return m.cfg.Commission
}

func (m *market) PriceUnit() *uint256.Int {
	return new(uint256.Int).Set(m.unit)
}

func (m *market) Operator() common.Address {
	return m.cfg.Operator
}

// OnDiceReceived records the custody of a dice transferred to the market
func (m *market) OnDiceReceived(ctx context.Context, call *host.Call, diceID domain.DiceID, from common.Address) error {
	if call.Caller != m.ledger.Address() {
		return domain.ErrUnexpectedSender
	}

	err := call.Store.CreateCustody(ctx, &schema.Custody{
		Custodian: m.address.Hex(),
		DiceID:    uint64(diceID),
		Depositor: from.Hex(),
	})
	if err != nil {
		return fmt.Errorf("failed to record custody: %w", err)
	}
	return nil
}

// List creates or re-prices the listing of a dice deposited by the caller
func (m *market) List(ctx context.Context, call *host.Call, diceID domain.DiceID, price uint64) error {
	if err := call.NonPayable(); err != nil {
		return err
	}
	if err := m.requireDepositor(ctx, call.Store, diceID, call.Caller); err != nil {
		return err
	}

	dice, err := m.ledger.GetDice(ctx, call.Store, diceID)
	if err != nil {
		return err
	}

	priceInWei, err := m.toWei(price)
	if err != nil {
		return err
	}
	required, overflow := new(uint256.Int).AddOverflow(dice.CreationValue, m.feeInWei)
	if overflow || priceInWei.Lt(required) {
		return fmt.Errorf("dice %s at %d: %w", diceID, price, domain.ErrPriceTooLow)
	}

	err = call.Store.UpsertListing(ctx, &schema.Listing{
		DiceID: uint64(diceID),
		Seller: call.Caller.Hex(),
		Price:  price,
	})
	if err != nil {
		return fmt.Errorf("failed to list dice: %w", err)
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceListed,
		DiceID: domain.DiceIDPtr(diceID),
		From:   domain.AddressPtr(call.Caller),
		Amount: priceInWei,
	})

	logger.InfoCtx(ctx, "Dice listed",
		zap.Uint64("dice_id", uint64(diceID)),
		zap.String("seller", call.Caller.Hex()),
		zap.Uint64("price", price))

	return nil
}

// Unlist deletes the caller's listing. The dice stays in the market's custody.
func (m *market) Unlist(ctx context.Context, call *host.Call, diceID domain.DiceID) error {
	if err := call.NonPayable(); err != nil {
		return err
	}

	listing, err := m.GetListing(ctx, call.Store, diceID)
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotListed)
	}
	if listing.Seller != call.Caller {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotSeller)
	}

	if err := call.Store.DeleteListing(ctx, uint64(diceID)); err != nil {
		return fmt.Errorf("failed to unlist dice: %w", err)
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceUnlisted,
		DiceID: domain.DiceIDPtr(diceID),
		From:   domain.AddressPtr(call.Caller),
	})
	return nil
}

// Buy settles a purchase: the buyer gets the dice, the seller the payment minus commission, the operator the commission
func (m *market) Buy(ctx context.Context, call *host.Call, diceID domain.DiceID) error {
	listing, err := m.GetListing(ctx, call.Store, diceID)
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotListed)
	}

	priceInWei, err := m.toWei(listing.Price)
	if err != nil {
		return err
	}
	payment := call.Value
	if payment.Lt(priceInWei) {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrPaymentTooLow)
	}

	if err := call.Store.DeleteListing(ctx, uint64(diceID)); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if err := call.Store.DeleteCustody(ctx, m.address.Hex(), uint64(diceID)); err != nil {
		return fmt.Errorf("failed to release custody: %w", err)
	}
	if err := m.ledger.Transfer(ctx, call.Forward(m.ledger.Address()), diceID, call.Caller); err != nil {
		return err
	}

	// listing prices always cover the commission, so the seller share cannot underflow
	sellerShare := new(uint256.Int).Sub(payment, m.feeInWei)
	if err := call.Pay(ctx, listing.Seller, sellerShare); err != nil {
		return err
	}
	if err := call.Pay(ctx, m.cfg.Operator, m.feeInWei); err != nil {
		return err
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceBought,
		DiceID: domain.DiceIDPtr(diceID),
		From:   domain.AddressPtr(listing.Seller),
		To:     domain.AddressPtr(call.Caller),
		Amount: new(uint256.Int).Set(payment),
	})

	logger.InfoCtx(ctx, "Dice bought",
		zap.Uint64("dice_id", uint64(diceID)),
		zap.String("seller", listing.Seller.Hex()),
		zap.String("buyer", call.Caller.Hex()),
		zap.String("payment", payment.Dec()))

	return nil
}

// Withdraw returns a deposited dice to the caller once it is no longer listed
func (m *market) Withdraw(ctx context.Context, call *host.Call, diceID domain.DiceID) error {
	if err := call.NonPayable(); err != nil {
		return err
	}
	if err := m.requireDepositor(ctx, call.Store, diceID, call.Caller); err != nil {
		return err
	}

	listing, err := m.GetListing(ctx, call.Store, diceID)
	if err != nil {
		return err
	}
	if listing != nil {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrStillListed)
	}

	if err := call.Store.DeleteCustody(ctx, m.address.Hex(), uint64(diceID)); err != nil {
		return fmt.Errorf("failed to release custody: %w", err)
	}
	if err := m.ledger.Transfer(ctx, call.Forward(m.ledger.Address()), diceID, call.Caller); err != nil {
		return err
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceWithdrawn,
		DiceID: domain.DiceIDPtr(diceID),
		To:     domain.AddressPtr(call.Caller),
	})
	return nil
}

func (m *market) GetListing(ctx context.Context, st store.Store, diceID domain.DiceID) (*domain.Listing, error) {
	listing, err := st.GetListing(ctx, uint64(diceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return types.ListingToDomain(listing), nil
}

func (m *market) Listings(ctx context.Context, st store.Store, seller *common.Address, limit, offset int) ([]*domain.Listing, uint64, error) {
	filter := store.ListingFilter{Limit: limit, Offset: offset}
	if seller != nil {
		filter.Seller = types.StringPtr(seller.Hex())
	}

	listings, total, err := st.GetListings(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get listings: %w", err)
	}
	return types.ListingsToDomain(listings), total, nil
}

// MinimumPrice returns ceil((creationValue + commission*unit) / unit)
func (m *market) MinimumPrice(ctx context.Context, st store.Store, diceID domain.DiceID) (uint64, error) {
	dice, err := m.ledger.GetDice(ctx, st, diceID)
	if err != nil {
		return 0, err
	}

	required, overflow := new(uint256.Int).AddOverflow(dice.CreationValue, m.feeInWei)
	if overflow {
		return 0, ErrPriceOverflow
	}
	units, rem := new(uint256.Int).DivMod(required, m.unit, new(uint256.Int))
	if !rem.IsZero() {
		units.AddUint64(units, 1)
	}
	if !units.IsUint64() {
		return 0, ErrPriceOverflow
	}
	return units.Uint64(), nil
}

func (m *market) GetDepositor(ctx context.Context, st store.Store, diceID domain.DiceID) (*common.Address, error) {
	custody, err := st.GetCustody(ctx, m.address.Hex(), uint64(diceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get custody: %w", err)
	}
	if custody == nil {
		return nil, nil
	}
	return domain.AddressPtr(common.HexToAddress(custody.Depositor)), nil
}

func (m *market) requireDepositor(ctx context.Context, st store.Store, diceID domain.DiceID, caller common.Address) error {
	depositor, err := m.GetDepositor(ctx, st, diceID)
	if err != nil {
		return err
	}
	if depositor == nil || *depositor != caller {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotCustodian)
	}
	return nil
}

func (m *market) toWei(price uint64) (*uint256.Int, error) {
	v, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(price), m.unit)
	if overflow {
		return nil, ErrPriceOverflow
	}
	return v, nil
}
