package registry

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/store"
)

var (
	deployer = common.HexToAddress("0x0000000000000000000000000000000000000d01")
	alice    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob      = common.HexToAddress("0x2222222222222222222222222222222222222222")

	oneEther = uint256.NewInt(domain.WEI_PER_ETHER)
)

func setupTestRegistry(t *testing.T) Registry {
	ctx := context.Background()
	st := store.NewMemoryStore()
	h := host.New(st, adapter.NewClock())
	for _, account := range []common.Address{alice, bob} {
		require.NoError(t, h.Fund(ctx, account, uint256.NewInt(10*domain.WEI_PER_ETHER)))
	}

	r, err := Deploy(h, st, Config{Deployer: deployer, MinMintPrice: oneEther, Commission: 1})
	require.NoError(t, err)
	return r
}

func TestDeployAddresses(t *testing.T) {
	r := setupTestRegistry(t)

	contracts := r.Contracts()
	assert.Equal(t, crypto.CreateAddress(deployer, 0), contracts.Ledger)
	assert.Equal(t, crypto.CreateAddress(deployer, 1), contracts.Arbiter)
	assert.Equal(t, crypto.CreateAddress(deployer, 2), contracts.Market)
	assert.NotEqual(t, contracts.Ledger, contracts.Arbiter)
	assert.NotEqual(t, contracts.Arbiter, contracts.Market)

	params := r.Parameters()
	assert.Equal(t, oneEther, params.MinMintPrice)
	assert.Equal(t, uint64(1), params.Commission)
	assert.Equal(t, uint256.NewInt(domain.WEI_PER_FINNEY), params.PriceUnit)
	assert.Equal(t, deployer, params.Operator, "operator defaults to the deployer")
}

func TestDeployValidation(t *testing.T) {
	st := store.NewMemoryStore()
	h := host.New(st, adapter.NewClock())

	_, err := Deploy(h, st, Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = Deploy(h, st, Config{Deployer: deployer, PriceUnit: new(uint256.Int)})
	assert.Error(t, err)
}

func TestMintAndTransfer(t *testing.T) {
	ctx := context.Background()
	r := setupTestRegistry(t)

	id, receipt, err := r.Mint(ctx, alice, oneEther, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DiceID(0), id)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventTypeDiceCreated, receipt.Events[0].Type)

	_, _, err = r.Mint(ctx, alice, uint256.NewInt(1), 6, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

	_, err = r.Transfer(ctx, alice, id, bob)
	require.NoError(t, err)

	dice, err := r.GetDice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, bob, dice.Owner)

	count, err := r.CountDice(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	owned, total, err := r.DiceByOwner(ctx, bob, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, owned, 1)
	assert.Equal(t, id, owned[0].ID)

	events, err := r.Events(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeDiceTransferred, events[1].Type)
	assert.Greater(t, events[1].Seq, events[0].Seq)
}

func TestCustodyThroughSatellites(t *testing.T) {
	ctx := context.Background()
	r := setupTestRegistry(t)
	contracts := r.Contracts()

	arbiterDice, _, err := r.Mint(ctx, alice, oneEther, 6, 1)
	require.NoError(t, err)
	marketDice, _, err := r.Mint(ctx, alice, oneEther, 6, 2)
	require.NoError(t, err)

	custody, err := r.GetCustody(ctx, arbiterDice)
	require.NoError(t, err)
	assert.Nil(t, custody, "dice held by its owner has no custody")

	_, err = r.Transfer(ctx, alice, arbiterDice, contracts.Arbiter)
	require.NoError(t, err)
	_, err = r.Transfer(ctx, alice, marketDice, contracts.Market)
	require.NoError(t, err)

	custody, err = r.GetCustody(ctx, arbiterDice)
	require.NoError(t, err)
	require.NotNil(t, custody)
	assert.Equal(t, contracts.Arbiter, custody.Custodian)
	assert.Equal(t, alice, custody.Depositor)

	deposits, err := r.ArbiterDeposits(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []domain.DiceID{arbiterDice}, deposits)

	minimum, err := r.MinimumPrice(ctx, marketDice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1001), minimum)

	_, err = r.List(ctx, alice, marketDice, minimum)
	require.NoError(t, err)

	listing, err := r.GetListing(ctx, marketDice)
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, alice, listing.Seller)

	listings, total, err := r.Listings(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Len(t, listings, 1)

	_, err = r.WithdrawFromMarket(ctx, alice, marketDice)
	assert.ErrorIs(t, err, domain.ErrStillListed)

	_, err = r.Unlist(ctx, alice, marketDice)
	require.NoError(t, err)
	_, err = r.WithdrawFromMarket(ctx, alice, marketDice)
	require.NoError(t, err)
	_, err = r.WithdrawFromArbiter(ctx, alice, arbiterDice)
	require.NoError(t, err)

	for _, id := range []domain.DiceID{arbiterDice, marketDice} {
		dice, err := r.GetDice(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, alice, dice.Owner)
	}
}

func TestBattleAndBuy(t *testing.T) {
	ctx := context.Background()
	r := setupTestRegistry(t)
	contracts := r.Contracts()

	aliceDice, _, err := r.Mint(ctx, alice, oneEther, 6, 1)
	require.NoError(t, err)
	bobDice, _, err := r.Mint(ctx, bob, oneEther, 30, 1)
	require.NoError(t, err)

	_, err = r.Transfer(ctx, alice, aliceDice, contracts.Arbiter)
	require.NoError(t, err)
	_, err = r.Transfer(ctx, bob, bobDice, contracts.Arbiter)
	require.NoError(t, err)

	_, _, err = r.Battle(ctx, bob, bobDice, aliceDice)
	assert.ErrorIs(t, err, domain.ErrNotPaired)

	_, err = r.SetBattlePair(ctx, alice, bob)
	require.NoError(t, err)
	_, err = r.SetBattlePair(ctx, bob, alice)
	require.NoError(t, err)

	opponent, err := r.GetBattlePair(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, opponent)
	assert.Equal(t, bob, *opponent)

	// strength(30, 1) = 11 beats strength(6, 1) = 1
	result, _, err := r.Battle(ctx, bob, bobDice, aliceDice)
	require.NoError(t, err)
	assert.Equal(t, domain.BattleOutcomeWin, result.Outcome)
	require.NotNil(t, result.Winner)
	assert.Equal(t, bob, *result.Winner)

	captured, err := r.GetDice(ctx, aliceDice)
	require.NoError(t, err)
	assert.Equal(t, bob, captured.Owner)

	// the winning dice stays deposited
	custody, err := r.GetCustody(ctx, bobDice)
	require.NoError(t, err)
	require.NotNil(t, custody)
	assert.Equal(t, bob, custody.Depositor)

	// bob lists the captured dice and alice buys it back
	_, err = r.Transfer(ctx, bob, aliceDice, contracts.Market)
	require.NoError(t, err)
	_, err = r.List(ctx, bob, aliceDice, 1500)
	require.NoError(t, err)

	_, err = r.Buy(ctx, alice, aliceDice, uint256.NewInt(1499*domain.WEI_PER_FINNEY))
	assert.ErrorIs(t, err, domain.ErrPaymentTooLow)

	_, err = r.Buy(ctx, alice, aliceDice, uint256.NewInt(1500*domain.WEI_PER_FINNEY))
	require.NoError(t, err)

	dice, err := r.GetDice(ctx, aliceDice)
	require.NoError(t, err)
	assert.Equal(t, alice, dice.Owner)

	commission, err := r.Host().BalanceOf(ctx, deployer)
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.WEI_PER_FINNEY), commission.Uint64())
}

func TestContractsCannotSendExternalCalls(t *testing.T) {
	ctx := context.Background()
	r := setupTestRegistry(t)
	contracts := r.Contracts()

	id, _, err := r.Mint(ctx, alice, oneEther, 6, 1)
	require.NoError(t, err)
	_, err = r.Transfer(ctx, alice, id, contracts.Market)
	require.NoError(t, err)
	_, err = r.List(ctx, alice, id, 1001)
	require.NoError(t, err)

	_, err = r.Transfer(ctx, contracts.Market, id, bob)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)

	dice, err := r.GetDice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, contracts.Market, dice.Owner)

	listing, err := r.GetListing(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, alice, listing.Seller)

	custody, err := r.GetCustody(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, custody)
	assert.Equal(t, alice, custody.Depositor)

	for _, sender := range []common.Address{contracts.Ledger, contracts.Arbiter, contracts.Market} {
		_, _, err = r.Mint(ctx, sender, uint256.NewInt(0), 6, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		_, err = r.SetBattlePair(ctx, sender, bob)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		_, err = r.Unlist(ctx, sender, id)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	}

	_, err = r.Unlist(ctx, alice, id)
	require.NoError(t, err)
	_, err = r.WithdrawFromMarket(ctx, alice, id)
	require.NoError(t, err)

	dice, err = r.GetDice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, alice, dice.Owner)
}
