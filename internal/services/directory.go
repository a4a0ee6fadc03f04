package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"

	"github.com/google/uuid"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/pkg/logger"
)

// New branches get approximate coordinates jittered around Tripoli until
// real geocoding exists.
const (
	tripoliBaseLat = 32.88
	tripoliBaseLng = 13.19
	coordJitter    = 0.1
)

type directoryBankStore interface {
	Create(ctx context.Context, bank *models.Bank) error
	List(ctx context.Context) []*models.Bank
	Get(ctx context.Context, id string) (*models.Bank, error)
}

type directoryBranchStore interface {
	Create(ctx context.Context, branch *models.Branch) error
	List(ctx context.Context) []*models.Branch
	ListByBank(ctx context.Context, bankID string) []*models.Branch
	Get(ctx context.Context, id string) (*models.Branch, error)
}

type directoryFavoriteStore interface {
	Toggle(ctx context.Context, bankID string) bool
	Set(ctx context.Context) map[string]bool
}

type directoryService struct {
	banks     directoryBankStore
	branches  directoryBranchStore
	favorites directoryFavoriteStore
	randFloat func() float64
	newID     func() string
}

func NewDirectoryService(banks directoryBankStore, branches directoryBranchStore, favorites directoryFavoriteStore) *directoryService {
	return &directoryService{
		banks:     banks,
		branches:  branches,
		favorites: favorites,
		randFloat: rand.Float64,
		newID:     func() string { return uuid.NewString() },
	}
}

// VisibleBanks applies the tab/search/availability filters and decorates
// each result with the favorite flag.
func (s *directoryService) VisibleBanks(ctx context.Context, tab models.HomeTab, searchTerm string, availableOnly bool) []dto.DirectoryBank {
	favorites := s.favorites.Set(ctx)
	visible := VisibleBanks(s.banks.List(ctx), s.branches.List(ctx), tab, searchTerm, availableOnly, favorites)

	out := make([]dto.DirectoryBank, 0, len(visible))
	for _, b := range visible {
		out = append(out, dto.DirectoryBank{Bank: *b, Favorite: favorites[b.ID]})
	}
	return out
}

func (s *directoryService) GetBank(ctx context.Context, id string) (*models.Bank, error) {
	return s.banks.Get(ctx, id)
}

func (s *directoryService) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	return s.branches.Get(ctx, id)
}

// AllBranches returns every branch for the shared map surface.
func (s *directoryService) AllBranches(ctx context.Context) []*models.Branch {
	return s.branches.List(ctx)
}

// BankBranches returns the branches of one bank with display metadata.
func (s *directoryService) BankBranches(ctx context.Context, bankID string) ([]dto.BranchView, error) {
	if _, err := s.banks.Get(ctx, bankID); err != nil {
		return nil, err
	}

	branches := s.branches.ListByBank(ctx, bankID)
	out := make([]dto.BranchView, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.NewBranchView(b))
	}
	return out, nil
}

func (s *directoryService) AddBank(ctx context.Context, name, city string) (*models.Bank, error) {
	bank := &models.Bank{
		ID:      s.newID(),
		Name:    name,
		City:    city,
		LogoURL: avatarURL(name),
	}
	if err := s.banks.Create(ctx, bank); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("bank added", "bank_id", bank.ID, "city", city)
	return bank, nil
}

func (s *directoryService) AddBranch(ctx context.Context, req dto.AddBranchRequest) (*models.Branch, error) {
	bank, err := s.banks.Get(ctx, req.BankID)
	if err != nil {
		return nil, err
	}

	address := req.Address
	if address == "" {
		address = bank.City
	}

	branch := &models.Branch{
		ID:         s.newID(),
		BankID:     bank.ID,
		Name:       req.Name,
		Address:    address,
		Lat:        tripoliBaseLat + s.randFloat()*coordJitter,
		Lng:        tripoliBaseLng + s.randFloat()*coordJitter,
		IsATM:      req.IsATM,
		Status:     models.StatusUnknown,
		CrowdLevel: 0,
	}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("branch added", "branch_id", branch.ID, "bank_id", bank.ID, "atm", branch.IsATM)
	return branch, nil
}

// ToggleFavorite flips membership and reports the new state.
func (s *directoryService) ToggleFavorite(ctx context.Context, bankID string) (bool, error) {
	if _, err := s.banks.Get(ctx, bankID); err != nil {
		return false, err
	}
	return s.favorites.Toggle(ctx, bankID), nil
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&color=fff", url.QueryEscape(name))
}
