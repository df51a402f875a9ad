package interfaces

import (
	"context"
	"errors"

	"logistica_cotizaciones/internal/domain/entities"
)

// ErrDuplicateReference is returned by Create when the reference string is
// already taken.
var ErrDuplicateReference = errors.New("duplicate quote reference")

// QuoteMutation decides a transition on a locked quote. It may mutate q and
// may return one tracking entry to append. Returning an error aborts the
// transaction and leaves the stored quote untouched.
type QuoteMutation func(q *entities.Quote, history []entities.TransportUpdate) (*entities.TransportUpdate, error)

// IQuoteRepository abstracts Postgres persistence for quotes and their
// append-only transport log.
//
// Lookups return a zero Quote (ID == "") when the row does not exist.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID int64) ([]entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	// ListTransportUpdates returns the log newest first; ties keep insertion order reversed.
	ListTransportUpdates(ctx context.Context, quoteID string) ([]entities.TransportUpdate, error)
	// Apply loads the quote under a row lock, runs fn, then persists the quote
	// and the returned entry in the same transaction.
	Apply(ctx context.Context, id string, fn QuoteMutation) (entities.Quote, *entities.TransportUpdate, error)
}
