package types

import (
	"fmt"

	"github.com/holiman/uint256"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseWei parses a stored decimal wei amount. An empty string is zero.
func ParseWei(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid wei amount %q: %w", s, err)
	}
	return v, nil
}

// FormatWei renders a wei amount for storage. Nil is zero.
func FormatWei(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}
