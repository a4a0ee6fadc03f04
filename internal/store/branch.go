package store

import (
	"context"
	"sync"
	"time"

	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
)

// branchStore owns the authoritative branch collection. Branches are
// mutated in place by report submissions and never deleted.
type branchStore struct {
	mu       sync.RWMutex
	branches []*models.Branch
	byID     map[string]*models.Branch
}

func NewBranchStore() *branchStore {
	return &branchStore{byID: make(map[string]*models.Branch)}
}

func (s *branchStore) Create(ctx context.Context, branch *models.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[branch.ID]; ok {
		return errs.NewAlreadyExistsError("branch already exists: " + branch.ID)
	}

	copied := *branch
	s.branches = append(s.branches, &copied)
	s.byID[copied.ID] = &copied
	return nil
}

func (s *branchStore) List(ctx context.Context) []*models.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyAll(s.branches)
}

func (s *branchStore) ListByBank(ctx context.Context, bankID string) []*models.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.Branch, 0)
	for _, b := range s.branches {
		if b.BankID == bankID {
			matched = append(matched, b)
		}
	}
	return s.copyAll(matched)
}

func (s *branchStore) Get(ctx context.Context, id string) (*models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, errs.NewNotFoundError("branch not found: " + id)
	}
	copied := *b
	return &copied, nil
}

// ApplyReport folds a report outcome into the branch. A miss reports
// ok=false without error; report submission against an unknown id is a
// silent no-op at the service layer.
func (s *branchStore) ApplyReport(ctx context.Context, id string, status models.LiquidityStatus, crowdLevel int, at time.Time) (*models.Branch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	b.Status = status
	b.CrowdLevel = crowdLevel
	b.LastUpdate = at

	copied := *b
	return &copied, true
}

func (s *branchStore) copyAll(in []*models.Branch) []*models.Branch {
	out := make([]*models.Branch, 0, len(in))
	for _, b := range in {
		copied := *b
		out = append(out, &copied)
	}
	return out
}
