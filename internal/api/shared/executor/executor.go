package executor

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-dice-registry/internal/api/shared/constants"
	"github.com/feral-file/ff-dice-registry/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-dice-registry/internal/api/shared/errors"
	"github.com/feral-file/ff-dice-registry/internal/battle"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/registry"
)

// Executor is the interface for the API executor
type Executor interface {
	// GetContracts returns the deployed contract addresses and engine parameters
	GetContracts(ctx context.Context) *dto.ContractsResponse

	// Mint creates a dice owned by the caller
	Mint(ctx context.Context, caller common.Address, req dto.MintRequest) (*dto.MintResponse, error)
	// GetDice retrieves a dice with its custody
	GetDice(ctx context.Context, diceID string) (*dto.DiceResponse, error)
	// GetDiceByOwner retrieves the dice owned by an address
	GetDiceByOwner(ctx context.Context, owner string, limit, offset int) (*dto.DiceListResponse, error)
	// Transfer moves a dice owned by the caller
	Transfer(ctx context.Context, caller common.Address, diceID string, req dto.TransferRequest) (*dto.ReceiptResponse, error)

	// GetBalance retrieves the native balance of an address
	GetBalance(ctx context.Context, address string) (*dto.BalanceResponse, error)
	// Fund credits an address with native currency
	Fund(ctx context.Context, req dto.FundRequest) (*dto.BalanceResponse, error)

	// SetBattlePair records the opponent of the caller
	SetBattlePair(ctx context.Context, caller common.Address, req dto.BattlePairRequest) (*dto.ReceiptResponse, error)
	// GetBattlePair retrieves the opponent an account registered
	GetBattlePair(ctx context.Context, account string) (*dto.BattlePairResponse, error)
	// GetArbiterDeposits retrieves the dice an account deposited in the arbiter
	GetArbiterDeposits(ctx context.Context, depositor string) (*dto.DepositsResponse, error)
	// Battle resolves a battle started by the caller
	Battle(ctx context.Context, caller common.Address, req dto.BattleRequest) (*dto.BattleResponse, error)
	// WithdrawFromArbiter returns a dice deposited in the arbiter to the caller
	WithdrawFromArbiter(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error)

	// List offers a dice the caller deposited in the market
	List(ctx context.Context, caller common.Address, diceID string, req dto.ListRequest) (*dto.ReceiptResponse, error)
	// Unlist withdraws a listing of the caller
	Unlist(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error)
	// Buy purchases a listed dice
	Buy(ctx context.Context, caller common.Address, diceID string, req dto.BuyRequest) (*dto.ReceiptResponse, error)
	// WithdrawFromMarket returns an unlisted dice deposited in the market to the caller
	WithdrawFromMarket(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error)
	// GetListing retrieves the active listing of a dice
	GetListing(ctx context.Context, diceID string) (*dto.ListingResponse, error)
	// GetListings retrieves active listings, optionally by seller
	GetListings(ctx context.Context, seller *string, limit, offset int) (*dto.ListingListResponse, error)
	// GetMinimumPrice retrieves the lowest accepted listing price of a dice
	GetMinimumPrice(ctx context.Context, diceID string) (*dto.MinimumPriceResponse, error)

	// GetEvents retrieves journaled events after a sequence number
	GetEvents(ctx context.Context, after uint64, limit int) (*dto.EventListResponse, error)
}

type executor struct {
	registry registry.Registry
}

func NewExecutor(r registry.Registry) Executor {
	return &executor{registry: r}
}

func (e *executor) GetContracts(ctx context.Context) *dto.ContractsResponse {
	return dto.MapContractsToDTO(e.registry.Contracts(), e.registry.Parameters())
}

func (e *executor) Mint(ctx context.Context, caller common.Address, req dto.MintRequest) (*dto.MintResponse, error) {
	value, err := domain.ParseAmount(req.Value)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	id, receipt, err := e.registry.Mint(ctx, caller, value, req.Power, req.Kind)
	if err != nil {
		return nil, err
	}

	return &dto.MintResponse{
		DiceID:          id.String(),
		ReceiptResponse: dto.MapReceiptToDTO(receipt),
	}, nil
}

func (e *executor) GetDice(ctx context.Context, diceID string) (*dto.DiceResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}

	dice, err := e.registry.GetDice(ctx, id)
	if err != nil {
		return nil, err
	}

	custody, err := e.registry.GetCustody(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get custody: %v", err))
	}

	resp := dto.MapDiceToDTO(dice, battle.Strength(dice.Power, dice.Kind))
	if custody != nil {
		resp.Custodian = dto.AddressString(&custody.Custodian)
		resp.Depositor = dto.AddressString(&custody.Depositor)
	}
	return resp, nil
}

func (e *executor) GetDiceByOwner(ctx context.Context, owner string, limit, offset int) (*dto.DiceListResponse, error) {
	address, err := parseAddress(owner)
	if err != nil {
		return nil, err
	}

	dice, total, err := e.registry.DiceByOwner(ctx, address, pageLimit(limit, constants.DEFAULT_DICE_LIMIT), offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.DiceListResponse{
		Dice:   make([]*dto.DiceResponse, 0, len(dice)),
		Total:  total,
		Offset: offset,
	}
	for _, d := range dice {
		resp.Dice = append(resp.Dice, dto.MapDiceToDTO(d, battle.Strength(d.Power, d.Kind)))
	}
	return resp, nil
}

func (e *executor) Transfer(ctx context.Context, caller common.Address, diceID string, req dto.TransferRequest) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	to, err := parseAddress(req.To)
	if err != nil {
		return nil, err
	}

	return receiptResponse(e.registry.Transfer(ctx, caller, id, to))
}

func (e *executor) GetBalance(ctx context.Context, address string) (*dto.BalanceResponse, error) {
	account, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	balance, err := e.registry.Host().BalanceOf(ctx, account)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get balance: %v", err))
	}
	return &dto.BalanceResponse{Address: account.Hex(), Balance: balance.Dec()}, nil
}

func (e *executor) Fund(ctx context.Context, req dto.FundRequest) (*dto.BalanceResponse, error) {
	account, err := parseAddress(req.Address)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	if err := e.registry.Host().Fund(ctx, account, amount); err != nil {
		return nil, err
	}
	return e.GetBalance(ctx, account.Hex())
}

func (e *executor) SetBattlePair(ctx context.Context, caller common.Address, req dto.BattlePairRequest) (*dto.ReceiptResponse, error) {
	opponent, err := parseAddress(req.Opponent)
	if err != nil {
		return nil, err
	}
	return receiptResponse(e.registry.SetBattlePair(ctx, caller, opponent))
}

func (e *executor) GetBattlePair(ctx context.Context, account string) (*dto.BattlePairResponse, error) {
	address, err := parseAddress(account)
	if err != nil {
		return nil, err
	}

	opponent, err := e.registry.GetBattlePair(ctx, address)
	if err != nil {
		return nil, err
	}
	return &dto.BattlePairResponse{Account: address.Hex(), Opponent: dto.AddressString(opponent)}, nil
}

func (e *executor) GetArbiterDeposits(ctx context.Context, depositor string) (*dto.DepositsResponse, error) {
	address, err := parseAddress(depositor)
	if err != nil {
		return nil, err
	}

	ids, err := e.registry.ArbiterDeposits(ctx, address)
	if err != nil {
		return nil, err
	}

	resp := &dto.DepositsResponse{Depositor: address.Hex(), DiceIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.DiceIDs = append(resp.DiceIDs, id.String())
	}
	return resp, nil
}

func (e *executor) Battle(ctx context.Context, caller common.Address, req dto.BattleRequest) (*dto.BattleResponse, error) {
	mine, err := parseDiceID(req.DiceID)
	if err != nil {
		return nil, err
	}
	opponent, err := parseDiceID(req.OpponentDiceID)
	if err != nil {
		return nil, err
	}

	result, receipt, err := e.registry.Battle(ctx, caller, mine, opponent)
	if err != nil {
		return nil, err
	}
	return &dto.BattleResponse{Result: result, ReceiptResponse: dto.MapReceiptToDTO(receipt)}, nil
}

func (e *executor) WithdrawFromArbiter(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	return receiptResponse(e.registry.WithdrawFromArbiter(ctx, caller, id))
}

func (e *executor) List(ctx context.Context, caller common.Address, diceID string, req dto.ListRequest) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	return receiptResponse(e.registry.List(ctx, caller, id, req.Price))
}

func (e *executor) Unlist(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	return receiptResponse(e.registry.Unlist(ctx, caller, id))
}

func (e *executor) Buy(ctx context.Context, caller common.Address, diceID string, req dto.BuyRequest) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	payment, err := domain.ParseAmount(req.Payment)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	return receiptResponse(e.registry.Buy(ctx, caller, id, payment))
}

func (e *executor) WithdrawFromMarket(ctx context.Context, caller common.Address, diceID string) (*dto.ReceiptResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}
	return receiptResponse(e.registry.WithdrawFromMarket(ctx, caller, id))
}

func (e *executor) GetListing(ctx context.Context, diceID string) (*dto.ListingResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}

	listing, err := e.registry.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	return dto.MapListingToDTO(listing, e.registry.Parameters().PriceUnit), nil
}

func (e *executor) GetListings(ctx context.Context, seller *string, limit, offset int) (*dto.ListingListResponse, error) {
	var sellerAddress *common.Address
	if seller != nil {
		address, err := parseAddress(*seller)
		if err != nil {
			return nil, err
		}
		sellerAddress = &address
	}

	listings, total, err := e.registry.Listings(ctx, sellerAddress, pageLimit(limit, constants.DEFAULT_LISTING_LIMIT), offset)
	if err != nil {
		return nil, err
	}

	unit := e.registry.Parameters().PriceUnit
	resp := &dto.ListingListResponse{
		Listings: make([]*dto.ListingResponse, 0, len(listings)),
		Total:    total,
		Offset:   offset,
	}
	for _, l := range listings {
		resp.Listings = append(resp.Listings, dto.MapListingToDTO(l, unit))
	}
	return resp, nil
}

func (e *executor) GetMinimumPrice(ctx context.Context, diceID string) (*dto.MinimumPriceResponse, error) {
	id, err := parseDiceID(diceID)
	if err != nil {
		return nil, err
	}

	price, err := e.registry.MinimumPrice(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MinimumPriceResponse{DiceID: id.String(), Price: price}, nil
}

func (e *executor) GetEvents(ctx context.Context, after uint64, limit int) (*dto.EventListResponse, error) {
	events, err := e.registry.Events(ctx, after, pageLimit(limit, constants.DEFAULT_EVENTS_LIMIT))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get events: %v", err))
	}

	next := after
	if len(events) > 0 {
		next = events[len(events)-1].Seq
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return &dto.EventListResponse{Events: events, Next: next}, nil
}

func receiptResponse(receipt *host.Receipt, err error) (*dto.ReceiptResponse, error) {
	if err != nil {
		return nil, err
	}
	resp := dto.MapReceiptToDTO(receipt)
	return &resp, nil
}

func parseDiceID(s string) (domain.DiceID, error) {
	id, err := domain.ParseDiceID(s)
	if err != nil {
		return 0, apierrors.NewBadRequestError("Invalid dice id", err.Error())
	}
	return id, nil
}

func parseAddress(s string) (common.Address, error) {
	address, err := domain.ParseAddress(s)
	if err != nil {
		return common.Address{}, apierrors.NewBadRequestError("Invalid address", err.Error())
	}
	return address, nil
}

// pageLimit applies the default and the maximum page size
func pageLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return limit
}
