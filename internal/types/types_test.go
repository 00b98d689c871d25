package types

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

func TestStringPtr(t *testing.T) {
	p := StringPtr("test")
	require.NotNil(t, p)
	assert.Equal(t, "test", *p)
	assert.Equal(t, "test", SafeString(p))
	assert.Equal(t, "", SafeString(nil))
}

func TestParseWei(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{name: "empty is zero", input: "", expected: "0"},
		{name: "one ether", input: "1000000000000000000", expected: "1000000000000000000"},
		{name: "max uint256", input: "115792089237316195423570985008687907853269984665640564039457584007913129639935", expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "overflow", input: "115792089237316195423570985008687907853269984665640564039457584007913129639936", expectErr: true},
		{name: "not a number", input: "ten", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseWei(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatWei(v))
		})
	}

	assert.Equal(t, "0", FormatWei(nil))
}

func TestDiceMapping(t *testing.T) {
	dice := &domain.Dice{
		ID:            3,
		Power:         6,
		Kind:          2,
		Owner:         common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7"),
		CreationValue: uint256.NewInt(domain.WEI_PER_ETHER),
	}

	row := DiceToSchema(dice)
	assert.Equal(t, uint64(3), row.ID)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", row.Owner)
	assert.Equal(t, "1000000000000000000", row.CreationValue)

	back, err := DiceToDomain(row)
	require.NoError(t, err)
	assert.Equal(t, dice, back)

	none, err := DiceToDomain(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = DiceToDomain(&schema.Dice{ID: 1, CreationValue: "-5"})
	assert.Error(t, err)
}

func TestListingToDomain(t *testing.T) {
	listing := ListingToDomain(&schema.Listing{
		DiceID: 4,
		Seller: "0x1111111111111111111111111111111111111111",
		Price:  1001,
	})
	require.NotNil(t, listing)
	assert.True(t, listing.Active)
	assert.Equal(t, domain.DiceID(4), listing.DiceID)
	assert.Equal(t, uint64(1001), listing.Price)
	assert.Nil(t, ListingToDomain(nil))
}

func TestEventMapping(t *testing.T) {
	event := &domain.Event{
		ID:        "01JTESTEVENT0000000000000A",
		Type:      domain.EventTypeDiceBought,
		Contract:  common.HexToAddress("0x3333333333333333333333333333333333333333"),
		TxHash:    common.HexToHash("0x01"),
		DiceID:    domain.DiceIDPtr(2),
		From:      domain.AddressPtr(common.HexToAddress("0x1111111111111111111111111111111111111111")),
		To:        domain.AddressPtr(common.HexToAddress("0x2222222222222222222222222222222222222222")),
		Amount:    uint256.NewInt(1_100_000_000_000_000_000),
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	row, err := EventToSchema(event)
	require.NoError(t, err)
	assert.Equal(t, "dice_bought", row.EventType)
	require.NotNil(t, row.DiceID)
	assert.Equal(t, uint64(2), *row.DiceID)
	assert.Equal(t, event.Timestamp, row.CreatedAt)
	// canonical JSON sorts keys
	assert.Contains(t, string(row.Payload), `"amount":"1100000000000000000","contract":`)

	row.Seq = 42
	back, err := EventToDomain(row)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), back.Seq)
	assert.Equal(t, event.Type, back.Type)
	assert.Equal(t, event.DiceID, back.DiceID)
	assert.Equal(t, event.From, back.From)
	assert.Equal(t, event.To, back.To)
	assert.Equal(t, event.Amount, back.Amount)
	assert.True(t, event.Timestamp.Equal(back.Timestamp))

	_, err = EventToDomain(&schema.Event{Seq: 1, Payload: []byte("{")})
	assert.Error(t, err)
}
