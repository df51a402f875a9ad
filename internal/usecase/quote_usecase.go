package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultReferenceAttempts = 5

// IQuoteUseCase exposes the quote lifecycle.
//
//   - POST /quotes                  => CreateQuote()
//   - POST /quotes/{id}/respond     => RespondToQuote()
//   - POST /quotes/{id}/accept      => AcceptQuote()
//   - POST /quotes/{id}/transport   => AddTransportUpdate()
//   - POST /quotes/{id}/complete    => CompleteTransport()
//   - PUT  /admin/quotes/{id}/status => SetQuoteStatus()
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, actor entities.Actor, shipment entities.Shipment) (entities.Quote, error)
	RespondToQuote(ctx context.Context, actor entities.Actor, quoteID string, amount float64, message string) (entities.Quote, error)
	AcceptQuote(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error)
	AddTransportUpdate(ctx context.Context, actor entities.Actor, quoteID string, in entities.TransportUpdateInput) (entities.TransportUpdate, error)
	CompleteTransport(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error)
	SetQuoteStatus(ctx context.Context, actor entities.Actor, quoteID string, status string) (entities.Quote, error)
	GetQuoteDetails(ctx context.Context, actor entities.Actor, quoteID string) (entities.QuoteDetails, error)
	ListQuotesForUser(ctx context.Context, actor entities.Actor) ([]entities.Quote, error)
	ListAllQuotes(ctx context.Context, actor entities.Actor, filter entities.QuoteFilter) ([]entities.Quote, error)
}

// QuoteSettings tunes quote creation.
type QuoteSettings struct {
	ReferenceMaxAttempts int
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotifier
	logger   *zap.Logger

	maxAttempts  int
	now          func() time.Time
	newID        func() string
	newReference func(now time.Time) string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, logger *zap.Logger, settings QuoteSettings) *QuoteUseCase {
	attempts := settings.ReferenceMaxAttempts
	if attempts <= 0 {
		attempts = defaultReferenceAttempts
	}
	return &QuoteUseCase{
		repo:         repo,
		notifier:     notifier,
		logger:       logger,
		maxAttempts:  attempts,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
		newReference: NewQuoteReference,
	}
}

// NewQuoteReference builds the human readable reference COT-<6>-<3> from the
// last six digits of the unix millisecond clock and a random suffix.
func NewQuoteReference(now time.Time) string {
	return fmt.Sprintf("COT-%06d-%03d", now.UnixMilli()%1_000_000, rand.IntN(1000))
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, actor entities.Actor, shipment entities.Shipment) (entities.Quote, error) {
	if err := shipment.Validate(); err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		q := entities.NewQuote(u.newID(), actor.UserID, u.newReference(now), shipment, now)
		created, err := u.repo.Create(ctx, q)
		if errors.Is(err, interfaces.ErrDuplicateReference) {
			u.logger.Warn("quote usecase create reference collision",
				zap.String("reference", q.Reference), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return entities.Quote{}, fmt.Errorf("create quote: %w", err)
		}
		u.logger.Info("quote usecase create ok",
			zap.String("quote_id", created.ID), zap.Int64("user_id", actor.UserID), zap.String("reference", created.Reference))
		return created, nil
	}
	return entities.Quote{}, ErrReferenceExhausted
}

func (u *QuoteUseCase) RespondToQuote(ctx context.Context, actor entities.Actor, quoteID string, amount float64, message string) (entities.Quote, error) {
	if !actor.IsAdmin() {
		return entities.Quote{}, ErrAdminRequired
	}
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := entities.ValidateResponse(amount, message); err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q, _, err := u.apply(ctx, id, func(q *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
		return nil, q.Respond(amount, message, now)
	})
	if err != nil {
		return entities.Quote{}, err
	}

	u.logger.Info("quote usecase respond ok", zap.String("quote_id", q.ID), zap.Float64("amount", amount))
	u.notify(ctx, entities.QuoteRespondedNotification(q))
	return q, nil
}

func (u *QuoteUseCase) AcceptQuote(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error) {
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	changed := false
	q, _, err := u.apply(ctx, id, func(q *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
		if !q.OwnedBy(actor.UserID) {
			return nil, ErrNotQuoteOwner
		}
		var err error
		changed, err = q.Accept(now)
		return nil, err
	})
	if err != nil {
		return entities.Quote{}, err
	}

	if changed {
		u.logger.Info("quote usecase accept ok", zap.String("quote_id", q.ID), zap.Int64("user_id", actor.UserID))
	} else {
		u.logger.Debug("quote usecase accept already accepted", zap.String("quote_id", q.ID))
	}
	return q, nil
}

func (u *QuoteUseCase) AddTransportUpdate(ctx context.Context, actor entities.Actor, quoteID string, in entities.TransportUpdateInput) (entities.TransportUpdate, error) {
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.TransportUpdate{}, err
	}

	label := strings.TrimSpace(in.Label)
	description := in.Description
	if !actor.IsAdmin() {
		if label == "" {
			label = entities.TransportLabelClientConfirmed
		}
		if label != entities.TransportLabelClientConfirmed {
			return entities.TransportUpdate{}, ErrClientLabelNotAllowed
		}
		description = entities.TransportDescriptionClientConfirmed
	} else if label == "" {
		return entities.TransportUpdate{}, entities.ErrEmptyTransportLabel
	}

	now := u.now()
	q, entry, err := u.apply(ctx, id, func(q *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
		if !actor.IsAdmin() && !q.OwnedBy(actor.UserID) {
			return nil, ErrNotQuoteOwner
		}
		if err := q.CanTrack(); err != nil {
			return nil, err
		}
		e := entities.NewTransportUpdate(q.ID, label, description, in.Location, now)
		return &e, nil
	})
	if err != nil {
		return entities.TransportUpdate{}, err
	}
	if entry == nil {
		return entities.TransportUpdate{}, fmt.Errorf("%w: transport update not persisted", ErrInternal)
	}

	u.logger.Info("quote usecase transport update ok",
		zap.String("quote_id", q.ID), zap.String("status", entry.Label), zap.Int64("user_id", actor.UserID))
	u.notify(ctx, entities.TransportNotification(q, entry.Label))
	return *entry, nil
}

func (u *QuoteUseCase) CompleteTransport(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error) {
	if !actor.IsAdmin() {
		return entities.Quote{}, ErrAdminRequired
	}
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q, entry, err := u.apply(ctx, id, func(q *entities.Quote, history []entities.TransportUpdate) (*entities.TransportUpdate, error) {
		e, err := q.Complete(history, now)
		if err != nil {
			return nil, err
		}
		return &e, nil
	})
	if err != nil {
		return entities.Quote{}, err
	}

	label := entities.TransportLabelFinished
	if entry != nil {
		label = entry.Label
	}
	u.logger.Info("quote usecase complete ok", zap.String("quote_id", q.ID))
	u.notify(ctx, entities.TransportNotification(q, label))
	return q, nil
}

func (u *QuoteUseCase) SetQuoteStatus(ctx context.Context, actor entities.Actor, quoteID string, status string) (entities.Quote, error) {
	if !actor.IsAdmin() {
		return entities.Quote{}, ErrAdminRequired
	}
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	next, ok := entities.ParseQuoteStatus(status)
	if !ok {
		return entities.Quote{}, entities.ErrInvalidStatus
	}

	now := u.now()
	var previous entities.QuoteStatus
	q, _, err := u.apply(ctx, id, func(q *entities.Quote, _ []entities.TransportUpdate) (*entities.TransportUpdate, error) {
		previous = q.Status
		return nil, q.OverrideStatus(next, now)
	})
	if err != nil {
		return entities.Quote{}, err
	}

	u.logger.Warn("quote usecase status override",
		zap.String("quote_id", q.ID), zap.String("from", string(previous)), zap.String("to", string(next)),
		zap.Int64("admin_id", actor.UserID))
	return q, nil
}

func (u *QuoteUseCase) GetQuoteDetails(ctx context.Context, actor entities.Actor, quoteID string) (entities.QuoteDetails, error) {
	id, err := normalizeQuoteID(quoteID)
	if err != nil {
		return entities.QuoteDetails{}, err
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteDetails{}, fmt.Errorf("get quote: %w", err)
	}
	if q.ID == "" {
		return entities.QuoteDetails{}, ErrQuoteNotFound
	}
	if !actor.IsAdmin() && !q.OwnedBy(actor.UserID) {
		return entities.QuoteDetails{}, ErrNotQuoteOwner
	}

	history, err := u.repo.ListTransportUpdates(ctx, q.ID)
	if err != nil {
		return entities.QuoteDetails{}, fmt.Errorf("list transport updates: %w", err)
	}
	if history == nil {
		history = []entities.TransportUpdate{}
	}
	return entities.QuoteDetails{Quote: q, History: history}, nil
}

func (u *QuoteUseCase) ListQuotesForUser(ctx context.Context, actor entities.Actor) ([]entities.Quote, error) {
	quotes, err := u.repo.ListByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

func (u *QuoteUseCase) ListAllQuotes(ctx context.Context, actor entities.Actor, filter entities.QuoteFilter) ([]entities.Quote, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}
	filter.Search = strings.TrimSpace(filter.Search)

	quotes, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list all quotes: %w", err)
	}
	return quotes, nil
}

// apply runs fn through the repository and turns a missing row into
// ErrQuoteNotFound.
func (u *QuoteUseCase) apply(ctx context.Context, id string, fn interfaces.QuoteMutation) (entities.Quote, *entities.TransportUpdate, error) {
	q, entry, err := u.repo.Apply(ctx, id, fn)
	if err != nil {
		if !isClassified(err) {
			u.logger.Error("quote usecase apply failed", zap.String("quote_id", id), zap.Error(err))
			return entities.Quote{}, nil, fmt.Errorf("apply quote transition: %w", err)
		}
		return entities.Quote{}, nil, err
	}
	if q.ID == "" {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}
	return q, entry, nil
}

// notify is best-effort: a failed delivery is logged and never undoes the
// committed transition.
func (u *QuoteUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("quote usecase notify failed",
			zap.Int64("user_id", n.UserID), zap.String("title", n.Title), zap.Error(err))
	}
}

func normalizeQuoteID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidQuoteID
	}
	return id.String(), nil
}

func isClassified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict)
}
