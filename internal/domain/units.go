package domain

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Denomination is a named number of wei
type Denomination string

const (
	DenominationWei    Denomination = "wei"
	DenominationFinney Denomination = "finney"
	DenominationEther  Denomination = "ether"
)

// Wei returns the number of wei in one unit of the denomination
func (d Denomination) Wei() (*uint256.Int, error) {
	switch Denomination(strings.ToLower(string(d))) {
	case DenominationWei:
		return uint256.NewInt(1), nil
	case DenominationFinney:
		return uint256.NewInt(WEI_PER_FINNEY), nil
	case DenominationEther:
		return uint256.NewInt(WEI_PER_ETHER), nil
	default:
		return nil, fmt.Errorf("unknown denomination: %s", d)
	}
}

// ParseAmount parses a decimal amount of wei.
// A denomination suffix (e.g. "1.5 ether", "1001 finney") is converted to wei.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	fields := strings.Fields(s)
	if len(fields) == 1 {
		amount, err := uint256.FromDecimal(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		return amount, nil
	}
	if len(fields) != 2 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}

	unit, err := Denomination(fields[1]).Wei()
	if err != nil {
		return nil, err
	}
	return scaleDecimal(fields[0], unit)
}

// FormatAmount renders a wei amount in the given denomination, trimming trailing zeros
func FormatAmount(amount *uint256.Int, d Denomination) (string, error) {
	unit, err := d.Wei()
	if err != nil {
		return "", err
	}
	if amount == nil {
		amount = new(uint256.Int)
	}

	whole, rem := new(uint256.Int).DivMod(amount, unit, new(uint256.Int))
	if rem.IsZero() {
		return whole.Dec(), nil
	}

	digits := len(unit.Dec()) - 1
	frac := rem.Dec()
	frac = strings.Repeat("0", digits-len(frac)) + frac
	return whole.Dec() + "." + strings.TrimRight(frac, "0"), nil
}

// scaleDecimal multiplies a decimal string with an optional fraction by unit
func scaleDecimal(value string, unit *uint256.Int) (*uint256.Int, error) {
	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}

	digits := len(unit.Dec()) - 1
	if len(frac) > digits {
		return nil, fmt.Errorf("invalid amount %q: too many decimal places", value)
	}

	// denominations are powers of ten, so appending zeros multiplies by unit
	digitsOnly := strings.TrimLeft(whole+frac+strings.Repeat("0", digits-len(frac)), "0")
	if digitsOnly == "" {
		digitsOnly = "0"
	}

	scaled, err := uint256.FromDecimal(digitsOnly)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return scaled, nil
}
