package domain

import "errors"

var (
	// ErrInsufficientPayment is returned when a mint is paid below the minimum mint price
	ErrInsufficientPayment = errors.New("at least the minimum mint price is needed to spawn a new dice")

	// ErrInvalidAttributes is returned when a dice is minted with a zero power or kind
	ErrInvalidAttributes = errors.New("dice power and kind must be positive")

	// ErrUnknownAsset is returned when a dice id was never minted
	ErrUnknownAsset = errors.New("dice does not exist")

	// ErrNotOwner is returned when the caller does not own the dice
	ErrNotOwner = errors.New("caller is not the owner of the dice")

	// ErrNotCustodian is returned when a dice is not held in custody on behalf of the caller
	ErrNotCustodian = errors.New("dice is not in custody for the caller")

	// ErrNotPaired is returned when two accounts have not named each other as battle opponents
	ErrNotPaired = errors.New("accounts are not paired for battle")

	// ErrNotSeller is returned when the caller is not the seller of a listing
	ErrNotSeller = errors.New("caller is not the seller")

	// ErrNotListed is returned when a dice has no active listing
	ErrNotListed = errors.New("dice is not listed")

	// ErrStillListed is returned when a listed dice is withdrawn from the market
	ErrStillListed = errors.New("dice is still listed")

	// ErrPriceTooLow is returned when a listing price is below creation value plus commission
	ErrPriceTooLow = errors.New("selling price needs to be >= creation value + commission")

	// ErrPaymentTooLow is returned when a purchase is paid below the listing price
	ErrPaymentTooLow = errors.New("payment needs to be >= listing price")

	// ErrInvalidAddress is returned for the zero address or a self-referencing account
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNonPayable is returned when value is attached to an operation that does not accept it
	ErrNonPayable = errors.New("operation does not accept payment")

	// ErrInsufficientFunds is returned when the caller's balance cannot cover the attached value
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnexpectedSender is returned when a custody hook is invoked by anyone but the ledger
	ErrUnexpectedSender = errors.New("unexpected sender")
)

// ErrorCode returns the stable code of a domain error, or an empty string if err is not one
func ErrorCode(err error) string {
	codes := []struct {
		err  error
		code string
	}{
		{ErrInsufficientPayment, "insufficient_payment"},
		{ErrInvalidAttributes, "invalid_attributes"},
		{ErrUnknownAsset, "unknown_asset"},
		{ErrNotOwner, "not_owner"},
		{ErrNotCustodian, "not_custodian"},
		{ErrNotPaired, "not_paired"},
		{ErrNotSeller, "not_seller"},
		{ErrNotListed, "not_listed"},
		{ErrStillListed, "still_listed"},
		{ErrPriceTooLow, "price_too_low"},
		{ErrPaymentTooLow, "payment_too_low"},
		{ErrInvalidAddress, "invalid_address"},
		{ErrNonPayable, "non_payable"},
		{ErrInsufficientFunds, "insufficient_funds"},
		{ErrUnexpectedSender, "unexpected_sender"},
	}

	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
