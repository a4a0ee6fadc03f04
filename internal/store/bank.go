package store

import (
	"context"
	"sync"

	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
)

// bankStore owns the authoritative bank collection. All state lives in
// process memory for the lifetime of the server; insertion order is the
// display order and is preserved by List.
type bankStore struct {
	mu    sync.RWMutex
	banks []*models.Bank
	byID  map[string]*models.Bank
}

func NewBankStore() *bankStore {
	return &bankStore{byID: make(map[string]*models.Bank)}
}

func (s *bankStore) Create(ctx context.Context, bank *models.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[bank.ID]; ok {
		return errs.NewAlreadyExistsError("bank already exists: " + bank.ID)
	}

	copied := *bank
	s.banks = append(s.banks, &copied)
	s.byID[copied.ID] = &copied
	return nil
}

func (s *bankStore) List(ctx context.Context) []*models.Bank {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Bank, 0, len(s.banks))
	for _, b := range s.banks {
		copied := *b
		out = append(out, &copied)
	}
	return out
}

func (s *bankStore) Get(ctx context.Context, id string) (*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, errs.NewNotFoundError("bank not found: " + id)
	}
	copied := *b
	return &copied, nil
}
