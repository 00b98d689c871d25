package emitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dice-registry/internal/adapter"
	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/logger"
	"github.com/feral-file/ff-dice-registry/internal/messaging"
	"github.com/feral-file/ff-dice-registry/internal/store"
	"github.com/feral-file/ff-dice-registry/internal/types"
)

const (
	DefaultCursorName   = "nats"
	DefaultBatchSize    = 100
	DefaultPollInterval = time.Second
)

// Config holds the configuration for the event emitter
type Config struct {
	// CursorName identifies the relay position in the journal
	CursorName string
	// BatchSize is the maximum number of events relayed per poll
	BatchSize int
	// PollInterval is the wait between polls once the journal is drained
	PollInterval time.Duration
	// RetryInitialInterval is the first wait after a failed publish
	RetryInitialInterval time.Duration
	// RetryMaxInterval caps the wait between publish attempts
	RetryMaxInterval time.Duration
	// RetryMaxElapsedTime bounds the retries of one event, 0 retries until the context ends
	RetryMaxElapsedTime time.Duration
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run relays journaled events until the context is cancelled or publishing fails
	Run(ctx context.Context) error
	// Relay publishes one batch of events after the cursor and returns how many were published
	Relay(ctx context.Context) (int, error)
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter relays the event journal to NATS
type emitter struct {
	publisher messaging.Publisher
	journal   store.EventJournal
	config    Config
	clock     adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	pub messaging.Publisher,
	journal store.EventJournal,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	if cfg.CursorName == "" {
		cfg.CursorName = DefaultCursorName
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return &emitter{
		publisher: pub,
		journal:   journal,
		config:    cfg,
		clock:     clock,
	}
}

// Run relays batches back to back and polls once the journal is drained
func (e *emitter) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event relay",
		zap.String("cursor", e.config.CursorName),
		zap.Int("batch_size", e.config.BatchSize))

	for {
		n, err := e.Relay(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			return err
		}
		if n == e.config.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.clock.After(e.config.PollInterval):
		}
	}
}

// Relay publishes the events after the cursor in journal order.
// The cursor is saved after the batch, or after the last published event when a publish fails.
func (e *emitter) Relay(ctx context.Context) (int, error) {
	cursor, err := e.journal.GetEventCursor(ctx, e.config.CursorName)
	if err != nil {
		return 0, fmt.Errorf("failed to get event cursor: %w", err)
	}

	rows, err := e.journal.GetEventsAfter(ctx, cursor, e.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get events: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	events, err := types.EventsToDomain(rows)
	if err != nil {
		return 0, err
	}

	published := 0
	last := cursor
	var publishErr error
	for _, event := range events {
		if publishErr = e.publishWithRetry(ctx, event); publishErr != nil {
			break
		}
		published++
		last = event.Seq
	}

	if last > cursor {
		if err := e.journal.SetEventCursor(ctx, e.config.CursorName, last); err != nil {
			return published, fmt.Errorf("failed to save event cursor: %w", err)
		}
		logger.DebugCtx(ctx, "Event cursor saved",
			zap.String("cursor", e.config.CursorName),
			zap.Uint64("seq", last),
			zap.Int("published", published))
	}

	if publishErr != nil {
		return published, publishErr
	}
	return published, nil
}

func (e *emitter) publishWithRetry(ctx context.Context, event *domain.Event) error {
	b := backoff.NewExponentialBackOff()
	if e.config.RetryInitialInterval > 0 {
		b.InitialInterval = e.config.RetryInitialInterval
	}
	if e.config.RetryMaxInterval > 0 {
		b.MaxInterval = e.config.RetryMaxInterval
	}
	b.MaxElapsedTime = e.config.RetryMaxElapsedTime

	operation := func() error {
		return e.publisher.PublishEvent(ctx, event)
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Event publish failed, retrying",
			zap.Error(err),
			zap.Uint64("seq", event.Seq),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to publish event %d after %d attempts: %w", event.Seq, attemptCount+1, err)
	}
	return nil
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.publisher.Close()
}
