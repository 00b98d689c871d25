package battle

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/host"
	"github.com/feral-file/ff-dice-registry/internal/ledger"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

// Arbiter resolves battles between dice deposited by two mutually paired accounts
//
//go:generate mockgen -source=arbiter.go -destination=../mocks/arbiter.go -package=mocks -mock_names=Arbiter=MockArbiter
type Arbiter interface {
	ledger.Receiver

	// Address returns the arbiter's contract address
	Address() common.Address

	// SetBattlePair records the opponent the caller is willing to battle
	SetBattlePair(ctx context.Context, call *host.Call, opponent common.Address) error
	// Battle resolves a battle between the caller's deposited dice and the opponent's
	Battle(ctx context.Context, call *host.Call, myDiceID, opponentDiceID domain.DiceID) (*domain.BattleResult, error)
	// Withdraw returns a deposited dice to its depositor
	Withdraw(ctx context.Context, call *host.Call, diceID domain.DiceID) error

	// GetBattlePair returns the opponent an account registered, nil if none
	GetBattlePair(ctx context.Context, st store.Store, account common.Address) (*common.Address, error)
	// GetDepositor returns the account that deposited a dice, nil if the arbiter does not hold it
	GetDepositor(ctx context.Context, st store.Store, diceID domain.DiceID) (*common.Address, error)
	// Deposits returns the dice held on behalf of a depositor
	Deposits(ctx context.Context, st store.Store, depositor common.Address) ([]domain.DiceID, error)
}

type arbiter struct {
	address common.Address
	ledger  ledger.AssetLedger
}

// New creates an arbiter deployed at address over a ledger
func New(address common.Address, l ledger.AssetLedger) Arbiter {
	return &arbiter{
		address: address,
		ledger:  l,
	}
}

func (a *arbiter) Address() common.Address {
	return a.address
}

// OnDiceReceived records the custody of a dice transferred to the arbiter
func (a *arbiter) OnDiceReceived(ctx context.Context, call *host.Call, diceID domain.DiceID, from common.Address) error {
	if call.Caller != a.ledger.Address() {
		return domain.ErrUnexpectedSender
	}

	err := call.Store.CreateCustody(ctx, &schema.Custody{
		Custodian: a.address.Hex(),
		DiceID:    uint64(diceID),
		Depositor: from.Hex(),
	})
	if err != nil {
		return fmt.Errorf("failed to record custody: %w", err)
	}
	return nil
}

// SetBattlePair records caller -> opponent, replacing any previous pairing
func (a *arbiter) SetBattlePair(ctx context.Context, call *host.Call, opponent common.Address) error {
	if err := call.NonPayable(); err != nil {
		return err
	}
	if domain.IsZeroAddress(opponent) || opponent == call.Caller {
		return fmt.Errorf("%w: opponent must be another account", domain.ErrInvalidAddress)
	}

	if err := call.Store.SetBattlePair(ctx, call.Caller.Hex(), opponent.Hex()); err != nil {
		return fmt.Errorf("failed to set battle pair: %w", err)
	}

	call.Emit(&domain.Event{
		Type: domain.EventTypePairingSet,
		From: domain.AddressPtr(call.Caller),
		To:   domain.AddressPtr(opponent),
	})
	return nil
}

// Battle compares the strengths of both dice. The owner of the weaker dice loses it to the other.
func (a *arbiter) Battle(ctx context.Context, call *host.Call, myDiceID, opponentDiceID domain.DiceID) (*domain.BattleResult, error) {
	if err := call.NonPayable(); err != nil {
		return nil, err
	}

	mine, err := a.GetDepositor(ctx, call.Store, myDiceID)
	if err != nil {
		return nil, err
	}
	if mine == nil || *mine != call.Caller {
		return nil, fmt.Errorf("dice %s: %w", myDiceID, domain.ErrNotCustodian)
	}

	opponent, err := a.GetDepositor(ctx, call.Store, opponentDiceID)
	if err != nil {
		return nil, err
	}
	if opponent == nil {
		return nil, fmt.Errorf("dice %s: %w", opponentDiceID, domain.ErrNotCustodian)
	}

	if err := a.requirePaired(ctx, call.Store, call.Caller, *opponent); err != nil {
		return nil, err
	}

	myDice, err := a.ledger.GetDice(ctx, call.Store, myDiceID)
	if err != nil {
		return nil, err
	}
	opponentDice, err := a.ledger.GetDice(ctx, call.Store, opponentDiceID)
	if err != nil {
		return nil, err
	}

	result := &domain.BattleResult{
		DiceID:           myDiceID,
		OpponentDiceID:   opponentDiceID,
		Strength:         Strength(myDice.Power, myDice.Kind),
		OpponentStrength: Strength(opponentDice.Power, opponentDice.Kind),
	}

	if result.Strength == result.OpponentStrength {
		result.Outcome = domain.BattleOutcomeDraw
		call.Emit(&domain.Event{
			Type:        domain.EventTypeBattleDraw,
			DiceID:      domain.DiceIDPtr(myDiceID),
			OtherDiceID: domain.DiceIDPtr(opponentDiceID),
			From:        domain.AddressPtr(call.Caller),
			To:          domain.AddressPtr(*opponent),
		})
		logger.InfoCtx(ctx, "Battle draw",
			zap.Uint64("dice_id", uint64(myDiceID)),
			zap.Uint64("opponent_dice_id", uint64(opponentDiceID)))
		return result, nil
	}

	winner, loser := call.Caller, *opponent
	winnerDice, loserDice := myDiceID, opponentDiceID
	if result.Strength < result.OpponentStrength {
		winner, loser = loser, winner
		winnerDice, loserDice = loserDice, winnerDice
	}

	// the loser's dice leaves custody and goes to the winner
	if err := a.release(ctx, call, loserDice, winner); err != nil {
		return nil, err
	}

	result.Outcome = domain.BattleOutcomeWin
	result.Winner = domain.AddressPtr(winner)
	result.Loser = domain.AddressPtr(loser)
	result.WinnerDiceID = domain.DiceIDPtr(winnerDice)
	result.LoserDiceID = domain.DiceIDPtr(loserDice)

	call.Emit(&domain.Event{
		Type:        domain.EventTypeBattleWon,
		DiceID:      domain.DiceIDPtr(winnerDice),
		OtherDiceID: domain.DiceIDPtr(loserDice),
		From:        domain.AddressPtr(loser),
		To:          domain.AddressPtr(winner),
	})

	logger.InfoCtx(ctx, "Battle won",
		zap.String("winner", winner.Hex()),
		zap.Uint64("winner_dice_id", uint64(winnerDice)),
		zap.Uint64("loser_dice_id", uint64(loserDice)))

	return result, nil
}

// Withdraw returns a deposited dice to the caller
func (a *arbiter) Withdraw(ctx context.Context, call *host.Call, diceID domain.DiceID) error {
	if err := call.NonPayable(); err != nil {
		return err
	}

	depositor, err := a.GetDepositor(ctx, call.Store, diceID)
	if err != nil {
		return err
	}
	if depositor == nil || *depositor != call.Caller {
		return fmt.Errorf("dice %s: %w", diceID, domain.ErrNotCustodian)
	}

	if err := a.release(ctx, call, diceID, call.Caller); err != nil {
		return err
	}

	call.Emit(&domain.Event{
		Type:   domain.EventTypeDiceWithdrawn,
		DiceID: domain.DiceIDPtr(diceID),
		To:     domain.AddressPtr(call.Caller),
	})
	return nil
}

// release deletes the custody record and transfers the dice out of the arbiter
func (a *arbiter) release(ctx context.Context, call *host.Call, diceID domain.DiceID, to common.Address) error {
	if err := call.Store.DeleteCustody(ctx, a.address.Hex(), uint64(diceID)); err != nil {
		return fmt.Errorf("failed to release custody: %w", err)
	}
	return a.ledger.Transfer(ctx, call.Forward(a.ledger.Address()), diceID, to)
}

func (a *arbiter) requirePaired(ctx context.Context, st store.Store, caller, opponent common.Address) error {
	callerPair, err := a.GetBattlePair(ctx, st, caller)
	if err != nil {
		return err
	}
	opponentPair, err := a.GetBattlePair(ctx, st, opponent)
	if err != nil {
		return err
	}

	if callerPair == nil || opponentPair == nil || *callerPair != opponent || *opponentPair != caller {
		return fmt.Errorf("%s and %s: %w", caller.Hex(), opponent.Hex(), domain.ErrNotPaired)
	}
	return nil
}

func (a *arbiter) GetBattlePair(ctx context.Context, st store.Store, account common.Address) (*common.Address, error) {
	pair, err := st.GetBattlePair(ctx, account.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to get battle pair: %w", err)
	}
	if pair == nil {
		return nil, nil
	}
	return domain.AddressPtr(common.HexToAddress(pair.Opponent)), nil
}

func (a *arbiter) GetDepositor(ctx context.Context, st store.Store, diceID domain.DiceID) (*common.Address, error) {
	custody, err := st.GetCustody(ctx, a.address.Hex(), uint64(diceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get custody: %w", err)
	}
	if custody == nil {
		return nil, nil
	}
	return domain.AddressPtr(common.HexToAddress(custody.Depositor)), nil
}

func (a *arbiter) Deposits(ctx context.Context, st store.Store, depositor common.Address) ([]domain.DiceID, error) {
	custodies, err := st.GetCustodiesByDepositor(ctx, a.address.Hex(), depositor.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to get deposits: %w", err)
	}

	ids := make([]domain.DiceID, 0, len(custodies))
	for _, c := range custodies {
		ids = append(ids, domain.DiceID(c.DiceID))
	}
	return ids, nil
}
