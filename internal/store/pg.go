package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-dice-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero settings fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Transaction runs fn inside a database transaction
func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// =============================================================================
// Dice
// =============================================================================

// NextDiceID reserves and returns the next sequential dice id
func (s *pgStore) NextDiceID(ctx context.Context) (uint64, error) {
	var id uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var kv schema.KeyValueStore
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", KeyDiceSequence).
			First(&kv).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get dice sequence: %w", err)
		}

		if kv.Value != "" {
			id, err = strconv.ParseUint(kv.Value, 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse dice sequence: %w", err)
			}
		}

		return upsertKeyValue(tx, KeyDiceSequence, strconv.FormatUint(id+1, 10))
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// CreateDice inserts a newly minted dice
func (s *pgStore) CreateDice(ctx context.Context, dice *schema.Dice) error {
	if err := s.db.WithContext(ctx).Create(dice).Error; err != nil {
		return fmt.Errorf("failed to create dice: %w", err)
	}
	return nil
}

// GetDice retrieves a dice by id
func (s *pgStore) GetDice(ctx context.Context, id uint64) (*schema.Dice, error) {
	var dice schema.Dice
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&dice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dice: %w", err)
	}
	return &dice, nil
}

// UpdateDiceOwner sets the owner of an existing dice
func (s *pgStore) UpdateDiceOwner(ctx context.Context, id uint64, owner string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Dice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"owner":      owner,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update dice owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update dice owner: dice %d not found", id)
	}
	return nil
}

// CountDice returns the number of minted dice
func (s *pgStore) CountDice(ctx context.Context) (uint64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.Dice{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count dice: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// GetDiceByOwner retrieves dice owned by an address ordered by id
func (s *pgStore) GetDiceByOwner(ctx context.Context, owner string, limit, offset int) ([]*schema.Dice, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Dice{}).Where("owner = ?", owner)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count dice by owner: %w", err)
	}

	var dice []*schema.Dice
	err := query.Order("id ASC").Limit(normalizeLimit(limit)).Offset(offset).Find(&dice).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get dice by owner: %w", err)
	}

	return dice, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Custody
// =============================================================================

// GetCustody retrieves the custody record of a dice held by a custodian
func (s *pgStore) GetCustody(ctx context.Context, custodian string, diceID uint64) (*schema.Custody, error) {
	var custody schema.Custody
	err := s.db.WithContext(ctx).
		Where("custodian = ? AND dice_id = ?", custodian, diceID).
		First(&custody).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get custody: %w", err)
	}
	return &custody, nil
}

// GetCustodiesByDepositor retrieves dice held by a custodian on behalf of a depositor
func (s *pgStore) GetCustodiesByDepositor(ctx context.Context, custodian, depositor string) ([]*schema.Custody, error) {
	var custodies []*schema.Custody
	err := s.db.WithContext(ctx).
		Where("custodian = ? AND depositor = ?", custodian, depositor).
		Order("dice_id ASC").
		Find(&custodies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get custodies: %w", err)
	}
	return custodies, nil
}

// CreateCustody records a deposit, replacing any previous record for the same dice
func (s *pgStore) CreateCustody(ctx context.Context, custody *schema.Custody) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "custodian"}, {Name: "dice_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"depositor", "created_at"}),
	}).Create(custody).Error
	if err != nil {
		return fmt.Errorf("failed to create custody: %w", err)
	}
	return nil
}

// DeleteCustody removes a custody record
func (s *pgStore) DeleteCustody(ctx context.Context, custodian string, diceID uint64) error {
	err := s.db.WithContext(ctx).
		Where("custodian = ? AND dice_id = ?", custodian, diceID).
		Delete(&schema.Custody{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete custody: %w", err)
	}
	return nil
}

// =============================================================================
// Battle pairs
// =============================================================================

// GetBattlePair retrieves the opponent an account registered
func (s *pgStore) GetBattlePair(ctx context.Context, account string) (*schema.BattlePair, error) {
	var pair schema.BattlePair
	err := s.db.WithContext(ctx).Where("account = ?", account).First(&pair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get battle pair: %w", err)
	}
	return &pair, nil
}

// SetBattlePair registers or replaces the opponent of an account
func (s *pgStore) SetBattlePair(ctx context.Context, account, opponent string) error {
	pair := schema.BattlePair{
		Account:   account,
		Opponent:  opponent,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}},
		DoUpdates: clause.AssignmentColumns([]string{"opponent", "updated_at"}),
	}).Create(&pair).Error
	if err != nil {
		return fmt.Errorf("failed to set battle pair: %w", err)
	}
	return nil
}

// =============================================================================
// Listings
// =============================================================================

// GetListing retrieves the active listing of a dice
func (s *pgStore) GetListing(ctx context.Context, diceID uint64) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).Where("dice_id = ?", diceID).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// UpsertListing creates a listing or replaces its price and seller
func (s *pgStore) UpsertListing(ctx context.Context, listing *schema.Listing) error {
	listing.UpdatedAt = time.Now().UTC()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dice_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"seller", "price", "updated_at"}),
	}).Create(listing).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listing: %w", err)
	}
	return nil
}

// DeleteListing removes a listing
func (s *pgStore) DeleteListing(ctx context.Context, diceID uint64) error {
	err := s.db.WithContext(ctx).Where("dice_id = ?", diceID).Delete(&schema.Listing{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// GetListings retrieves active listings ordered by dice id
func (s *pgStore) GetListings(ctx context.Context, filter ListingFilter) ([]*schema.Listing, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Listing{})
	if filter.Seller != nil {
		query = query.Where("seller = ?", *filter.Seller)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var listings []*schema.Listing
	err := query.Order("dice_id ASC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(filter.Offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get listings: %w", err)
	}

	return listings, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Accounts
// =============================================================================

// GetBalance retrieves the wei balance of an address
func (s *pgStore) GetBalance(ctx context.Context, address string) (string, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get balance: %w", err)
	}
	return account.Balance, nil
}

// SetBalance stores the wei balance of an address
func (s *pgStore) SetBalance(ctx context.Context, address, balance string) error {
	account := schema.Account{
		Address:   address,
		Balance:   balance,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(&account).Error
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return nil
}

// =============================================================================
// Key-value
// =============================================================================

// GetKeyValue retrieves a value by key
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key value: %w", err)
	}
	return kv.Value, nil
}

// SetKeyValue stores a value by key
func (s *pgStore) SetKeyValue(ctx context.Context, key, value string) error {
	return upsertKeyValue(s.db.WithContext(ctx), key, value)
}

func upsertKeyValue(db *gorm.DB, key, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key value: %w", err)
	}
	return nil
}

// =============================================================================
// Event journal
// =============================================================================

// AppendEvents appends events to the journal, assigning their Seq
func (s *pgStore) AppendEvents(ctx context.Context, events []*schema.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&events).Error; err != nil {
		return fmt.Errorf("failed to append events: %w", err)
	}
	return nil
}

// GetEventsAfter retrieves up to limit events with Seq greater than seq
func (s *pgStore) GetEventsAfter(ctx context.Context, seq uint64, limit int) ([]*schema.Event, error) {
	var events []*schema.Event
	err := s.db.WithContext(ctx).
		Where("seq > ?", seq).
		Order("seq ASC").
		Limit(normalizeLimit(limit)).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// GetEventCursor retrieves the last relayed sequence of a named consumer
func (s *pgStore) GetEventCursor(ctx context.Context, name string) (uint64, error) {
	value, err := s.GetKeyValue(ctx, eventCursorKey(name))
	if err != nil {
		return 0, fmt.Errorf("failed to get event cursor: %w", err)
	}
	if value == "" {
		return 0, nil
	}

	seq, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse event cursor: %w", err)
	}
	return seq, nil
}

// SetEventCursor stores the last relayed sequence of a named consumer
func (s *pgStore) SetEventCursor(ctx context.Context, name string, seq uint64) error {
	if err := s.SetKeyValue(ctx, eventCursorKey(name), strconv.FormatUint(seq, 10)); err != nil {
		return fmt.Errorf("failed to set event cursor: %w", err)
	}
	return nil
}
