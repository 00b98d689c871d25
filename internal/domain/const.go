package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Denominations, expressed in wei
	WEI_PER_FINNEY = 1_000_000_000_000_000
	WEI_PER_ETHER  = 1_000_000_000_000_000_000

	// Engine defaults
	DEFAULT_MIN_MINT_PRICE = WEI_PER_ETHER / 100 // 0.01 ether
	DEFAULT_COMMISSION     = 1                   // in price units
	DEFAULT_PRICE_UNIT     = WEI_PER_FINNEY
)
