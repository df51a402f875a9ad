package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/usecase/interfaces"
)

// memQuoteStore is an in-memory IQuoteRepository with the same atomicity
// contract as the Postgres one: a failed mutation leaves nothing behind.
type memQuoteStore struct {
	mu      sync.Mutex
	quotes  map[string]entities.Quote
	refs    map[string]bool
	updates []entities.TransportUpdate
	seq     int64
}

var _ interfaces.IQuoteRepository = (*memQuoteStore)(nil)

func newMemQuoteStore() *memQuoteStore {
	return &memQuoteStore{quotes: map[string]entities.Quote{}, refs: map[string]bool{}}
}

func (s *memQuoteStore) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs[q.Reference] {
		return entities.Quote{}, interfaces.ErrDuplicateReference
	}
	s.refs[q.Reference] = true
	s.quotes[q.ID] = q
	return q, nil
}

func (s *memQuoteStore) GetByID(_ context.Context, id string) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quotes[id], nil
}

func (s *memQuoteStore) ListByUserID(_ context.Context, userID int64) ([]entities.Quote, error) {
	return s.list(entities.QuoteFilter{}, func(q entities.Quote) bool { return q.UserID == userID }), nil
}

func (s *memQuoteStore) List(_ context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	return s.list(filter, func(entities.Quote) bool { return true }), nil
}

func (s *memQuoteStore) list(filter entities.QuoteFilter, keep func(entities.Quote) bool) []entities.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Quote{}
	for _, q := range s.quotes {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(q.Reference), strings.ToLower(filter.Search)) {
			continue
		}
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memQuoteStore) ListTransportUpdates(_ context.Context, quoteID string) ([]entities.TransportUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked(quoteID), nil
}

func (s *memQuoteStore) historyLocked(quoteID string) []entities.TransportUpdate {
	out := []entities.TransportUpdate{}
	for _, u := range s.updates {
		if u.QuoteID == quoteID {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *memQuoteStore) Apply(_ context.Context, id string, fn interfaces.QuoteMutation) (entities.Quote, *entities.TransportUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.quotes[id]
	if !ok {
		return entities.Quote{}, nil, nil
	}
	working := current
	entry, err := fn(&working, s.historyLocked(id))
	if err != nil {
		return entities.Quote{}, nil, err
	}
	s.quotes[id] = working
	if entry == nil {
		return working, nil, nil
	}
	s.seq++
	saved := *entry
	saved.ID = s.seq
	s.updates = append(s.updates, saved)
	return working, &saved, nil
}

// recordingNotifier keeps every delivered notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []entities.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg entities.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
