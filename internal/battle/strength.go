package battle

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Strength returns the battle roll of a dice: a face between 1 and power,
// derived from keccak256(power || kind). It depends on nothing but the dice attributes.
func Strength(power, kind uint8) uint8 {
	if power == 0 {
		return 0
	}

	hash := crypto.Keccak256([]byte{power, kind})
	roll := new(uint256.Int).SetBytes(hash)
	roll.Mod(roll, uint256.NewInt(uint64(power)))

	return uint8(roll.Uint64()) + 1 //nolint:gosec,G115
}
