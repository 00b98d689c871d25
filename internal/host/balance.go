package host

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

func balanceOf(ctx context.Context, st store.Store, address common.Address) (*uint256.Int, error) {
	raw, err := st.GetBalance(ctx, address.Hex())
	if err != nil {
		return nil, err
	}
	return types.ParseWei(raw)
}

// transfer moves wei between two balances of the same store
func transfer(ctx context.Context, st store.Store, from, to common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() || from == to {
		return nil
	}

	fromBalance, err := balanceOf(ctx, st, from)
	if err != nil {
		return err
	}
	if fromBalance.Lt(amount) {
		return domain.ErrInsufficientFunds
	}

	toBalance, err := balanceOf(ctx, st, to)
	if err != nil {
		return err
	}
	// total supply is bounded by uint256, so no single balance can overflow
	toBalance = new(uint256.Int).Add(toBalance, amount)
	fromBalance = new(uint256.Int).Sub(fromBalance, amount)

	if err := st.SetBalance(ctx, from.Hex(), fromBalance.Dec()); err != nil {
		return err
	}
	return st.SetBalance(ctx, to.Hex(), toBalance.Dec())
}
