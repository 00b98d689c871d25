package constants

const (
	MAX_PAGE_SIZE         = 100
	DEFAULT_OFFSET        = 0
	DEFAULT_DICE_LIMIT    = 20
	DEFAULT_LISTING_LIMIT = 20
	DEFAULT_EVENTS_LIMIT  = 50
)
