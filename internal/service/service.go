package service

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"trading-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// QuoteProvider is the external price-lookup collaborator.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}

// SessionStore keeps the server-side record of live logins.
type SessionStore interface {
	Put(ctx context.Context, userID int, token string, ttl time.Duration) error
	Get(ctx context.Context, userID int) (string, error)
	Delete(ctx context.Context, userID int) error
}

// TradePublisher emits accepted trades to downstream consumers.
type TradePublisher interface {
	PublishTrade(ctx context.Context, trade *entity.Transaction) error
}

// ValidationError is a missing or malformed form field. Handlers surface
// it with a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
