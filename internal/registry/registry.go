package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/battle"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/ledger"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/market"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

// Config holds the deployment parameters
type Config struct {
	// Deployer derives the contract addresses
	Deployer common.Address
	// MinMintPrice is the ledger's mint floor in wei, defaults to 0.01 ether
	MinMintPrice *uint256.Int
	// Commission is the market fee in price units
	Commission uint64
	// PriceUnit is the number of wei per market price unit, defaults to one finney
	PriceUnit *uint256.Int
	// Operator receives market commissions, defaults to the deployer
	Operator common.Address
}

// Contracts holds the deployed contract addresses
type Contracts struct {
	Ledger  common.Address `json:"ledger"`
	Arbiter common.Address `json:"arbiter"`
	Market  common.Address `json:"market"`
}

// Registry is the deployed set of contracts and the entry point of every call into them.
// Mutating methods run one host transaction each. Views read the store directly.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Contracts returns the deployed contract addresses
	Contracts() Contracts
	// Host returns the execution host
	Host() host.Host
	// Parameters returns the engine parameters in effect
	Parameters() Parameters

	// Mint creates a dice for from, paid with value
	Mint(ctx context.Context, from common.Address, value *uint256.Int, power, kind uint8) (domain.DiceID, *host.Receipt, error)
	// Transfer moves a dice owned by from to another address
	Transfer(ctx context.Context, from common.Address, diceID domain.DiceID, to common.Address) (*host.Receipt, error)

	// SetBattlePair records the opponent from is willing to battle
	SetBattlePair(ctx context.Context, from, opponent common.Address) (*host.Receipt, error)
	// Battle resolves a battle between two deposited dice
	Battle(ctx context.Context, from common.Address, myDiceID, opponentDiceID domain.DiceID) (*domain.BattleResult, *host.Receipt, error)
	// WithdrawFromArbiter returns a dice deposited in the arbiter
	WithdrawFromArbiter(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error)

	// List offers a dice deposited in the market
	List(ctx context.Context, from common.Address, diceID domain.DiceID, price uint64) (*host.Receipt, error)
	// Unlist withdraws a listing
	Unlist(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error)
	// Buy purchases a listed dice with payment
	Buy(ctx context.Context, from common.Address, diceID domain.DiceID, payment *uint256.Int) (*host.Receipt, error)
	// WithdrawFromMarket returns an unlisted dice deposited in the market
	WithdrawFromMarket(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error)

	// GetDice returns a dice
	GetDice(ctx context.Context, diceID domain.DiceID) (*domain.Dice, error)
	// GetCustody returns the custody of a dice held by the arbiter or the market, nil otherwise
	GetCustody(ctx context.Context, diceID domain.DiceID) (*domain.Custody, error)
	// DiceByOwner returns dice owned by an address
	DiceByOwner(ctx context.Context, owner common.Address, limit, offset int) ([]*domain.Dice, uint64, error)
	// CountDice returns the number of minted dice
	CountDice(ctx context.Context) (uint64, error)
	// GetBattlePair returns the opponent an account registered
	GetBattlePair(ctx context.Context, account common.Address) (*common.Address, error)
	// ArbiterDeposits returns the dice an account deposited in the arbiter
	ArbiterDeposits(ctx context.Context, depositor common.Address) ([]domain.DiceID, error)
	// GetListing returns the active listing of a dice, nil if none
	GetListing(ctx context.Context, diceID domain.DiceID) (*domain.Listing, error)
	// Listings returns active listings
	Listings(ctx context.Context, seller *common.Address, limit, offset int) ([]*domain.Listing, uint64, error)
	// MinimumPrice returns the lowest accepted listing price of a dice in price units
	MinimumPrice(ctx context.Context, diceID domain.DiceID) (uint64, error)
	// Events returns journaled events after a sequence number
	Events(ctx context.Context, after uint64, limit int) ([]*domain.Event, error)
}

// Parameters describes the engine configuration in effect
type Parameters struct {
	MinMintPrice *uint256.Int   `json:"min_mint_price"`
	Commission   uint64         `json:"commission"`
	PriceUnit    *uint256.Int   `json:"price_unit"`
	Operator     common.Address `json:"operator"`
}

// Has reports whether address is one of the deployed contracts
func (c Contracts) Has(address common.Address) bool {
	return address == c.Ledger || address == c.Arbiter || address == c.Market
}

type registry struct {
	host      host.Host
	store     store.Store
	contracts Contracts
	ledger    ledger.AssetLedger
	arbiter   battle.Arbiter
	market    market.Market
}

// Deploy creates the ledger, the arbiter and the market at addresses derived from the deployer,
// and registers the two satellites as custody receivers of the ledger
func Deploy(h host.Host, st store.Store, cfg Config) (Registry, error) {
	if domain.IsZeroAddress(cfg.Deployer) {
		return nil, fmt.Errorf("%w: deployer", domain.ErrInvalidAddress)
	}
	operator := cfg.Operator
	if domain.IsZeroAddress(operator) {
		operator = cfg.Deployer
	}

	contracts := Contracts{
		Ledger:  crypto.CreateAddress(cfg.Deployer, 0),
		Arbiter: crypto.CreateAddress(cfg.Deployer, 1),
		Market:  crypto.CreateAddress(cfg.Deployer, 2),
	}

	l := ledger.New(contracts.Ledger, cfg.MinMintPrice)
	a := battle.New(contracts.Arbiter, l)
	m, err := market.New(contracts.Market, l, market.Config{
		Commission: cfg.Commission,
		PriceUnit:  cfg.PriceUnit,
		Operator:   operator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy market: %w", err)
	}

	l.RegisterReceiver(contracts.Arbiter, a)
	l.RegisterReceiver(contracts.Market, m)

	logger.Info("Contracts deployed",
		zap.String("deployer", cfg.Deployer.Hex()),
		zap.String("ledger", contracts.Ledger.Hex()),
		zap.String("arbiter", contracts.Arbiter.Hex()),
		zap.String("market", contracts.Market.Hex()))

	return &registry{
		host:      h,
		store:     st,
		contracts: contracts,
		ledger:    l,
		arbiter:   a,
		market:    m,
	}, nil
}

func (r *registry) Contracts() Contracts {
	return r.contracts
}

func (r *registry) Host() host.Host {
	return r.host
}

func (r *registry) Parameters() Parameters {
	return Parameters{
		MinMintPrice: r.ledger.MinMintPrice(),
		Commission:   r.market.Commission(),
		PriceUnit:    r.market.PriceUnit(),
		Operator:     r.market.Operator(),
	}
}

// execute submits an external call. Contracts only act through nested calls, so they are never accepted as senders.
func (r *registry) execute(ctx context.Context, from, to common.Address, value *uint256.Int, fn host.Handler) (*host.Receipt, error) {
	if r.contracts.Has(from) {
		return nil, fmt.Errorf("%w: contract %s cannot send external calls", domain.ErrInvalidAddress, from.Hex())
	}
	return r.host.Execute(ctx, host.Message{From: from, To: to, Value: value}, fn)
}

func (r *registry) Mint(ctx context.Context, from common.Address, value *uint256.Int, power, kind uint8) (domain.DiceID, *host.Receipt, error) {
	var id domain.DiceID
	receipt, err := r.execute(ctx, from, r.contracts.Ledger, value, func(ctx context.Context, call *host.Call) error {
		var err error
		id, err = r.ledger.Add(ctx, call, power, kind)
		return err
	})
	if err != nil {
		return 0, nil, err
	}
	return id, receipt, nil
}

func (r *registry) Transfer(ctx context.Context, from common.Address, diceID domain.DiceID, to common.Address) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Ledger, nil, func(ctx context.Context, call *host.Call) error {
		return r.ledger.Transfer(ctx, call, diceID, to)
	})
}

func (r *registry) SetBattlePair(ctx context.Context, from, opponent common.Address) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Arbiter, nil, func(ctx context.Context, call *host.Call) error {
		return r.arbiter.SetBattlePair(ctx, call, opponent)
	})
}

func (r *registry) Battle(ctx context.Context, from common.Address, myDiceID, opponentDiceID domain.DiceID) (*domain.BattleResult, *host.Receipt, error) {
	var result *domain.BattleResult
	receipt, err := r.execute(ctx, from, r.contracts.Arbiter, nil, func(ctx context.Context, call *host.Call) error {
		var err error
		result, err = r.arbiter.Battle(ctx, call, myDiceID, opponentDiceID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return result, receipt, nil
}

func (r *registry) WithdrawFromArbiter(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Arbiter, nil, func(ctx context.Context, call *host.Call) error {
		return r.arbiter.Withdraw(ctx, call, diceID)
	})
}

func (r *registry) List(ctx context.Context, from common.Address, diceID domain.DiceID, price uint64) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Market, nil, func(ctx context.Context, call *host.Call) error {
		return r.market.List(ctx, call, diceID, price)
	})
}

func (r *registry) Unlist(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Market, nil, func(ctx context.Context, call *host.Call) error {
		return r.market.Unlist(ctx, call, diceID)
	})
}

func (r *registry) Buy(ctx context.Context, from common.Address, diceID domain.DiceID, payment *uint256.Int) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Market, payment, func(ctx context.Context, call *host.Call) error {
		return r.market.Buy(ctx, call, diceID)
	})
}

func (r *registry) WithdrawFromMarket(ctx context.Context, from common.Address, diceID domain.DiceID) (*host.Receipt, error) {
	return r.execute(ctx, from, r.contracts.Market, nil, func(ctx context.Context, call *host.Call) error {
		return r.market.Withdraw(ctx, call, diceID)
	})
}

func (r *registry) GetDice(ctx context.Context, diceID domain.DiceID) (*domain.Dice, error) {
	return r.ledger.GetDice(ctx, r.store, diceID)
}

func (r *registry) GetCustody(ctx context.Context, diceID domain.DiceID) (*domain.Custody, error) {
	dice, err := r.ledger.GetDice(ctx, r.store, diceID)
	if err != nil {
		return nil, err
	}
	if dice.Owner != r.contracts.Arbiter && dice.Owner != r.contracts.Market {
		return nil, nil
	}

	custody, err := r.store.GetCustody(ctx, dice.Owner.Hex(), uint64(diceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get custody: %w", err)
	}
	return types.CustodyToDomain(custody), nil
}

func (r *registry) DiceByOwner(ctx context.Context, owner common.Address, limit, offset int) ([]*domain.Dice, uint64, error) {
	return r.ledger.DiceByOwner(ctx, r.store, owner, limit, offset)
}

func (r *registry) CountDice(ctx context.Context) (uint64, error) {
	return r.ledger.Count(ctx, r.store)
}

func (r *registry) GetBattlePair(ctx context.Context, account common.Address) (*common.Address, error) {
	return r.arbiter.GetBattlePair(ctx, r.store, account)
}

func (r *registry) ArbiterDeposits(ctx context.Context, depositor common.Address) ([]domain.DiceID, error) {
	return r.arbiter.Deposits(ctx, r.store, depositor)
}

func (r *registry) GetListing(ctx context.Context, diceID domain.DiceID) (*domain.Listing, error) {
	return r.market.GetListing(ctx, r.store, diceID)
}

func (r *registry) Listings(ctx context.Context, seller *common.Address, limit, offset int) ([]*domain.Listing, uint64, error) {
	return r.market.Listings(ctx, r.store, seller, limit, offset)
}

func (r *registry) MinimumPrice(ctx context.Context, diceID domain.DiceID) (uint64, error) {
	return r.market.MinimumPrice(ctx, r.store, diceID)
}

func (r *registry) Events(ctx context.Context, after uint64, limit int) ([]*domain.Event, error) {
	rows, err := r.store.GetEventsAfter(ctx, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return types.EventsToDomain(rows)
}
