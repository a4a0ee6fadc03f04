package services

import (
	"strings"
	"testing"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/store"
	"github.com/dalili-app/dalili-backend/pkg/helpers"
)

// The directory service is exercised against the real in-memory stores;
// they are the unit under ownership here, not an external system.
func newDirectoryFixture(t *testing.T) (*directoryService, func() []*models.Bank) {
	t.Helper()
	ctx := helpers.TestCtx()

	banks := store.NewBankStore()
	branches := store.NewBranchStore()
	favorites := store.NewFavoriteStore()

	seed := []*models.Bank{
		{ID: "1", Name: "مصرف الجمهورية", City: "Tripoli"},
		{ID: "2", Name: "مصرف الوحدة", City: "Benghazi"},
	}
	for _, b := range seed {
		if err := banks.Create(ctx, b); err != nil {
			t.Fatalf("seed bank: %v", err)
		}
	}
	if err := branches.Create(ctx, &models.Branch{ID: "b1", BankID: "1", Status: models.StatusAvailable}); err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	svc := NewDirectoryService(banks, branches, favorites)
	svc.newID = func() string { return "generated-id" }
	svc.randFloat = func() float64 { return 0.5 }

	return svc, func() []*models.Bank { return banks.List(ctx) }
}

func TestDirectoryVisibleBanksDecoratesFavorites(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, _ := newDirectoryFixture(t)

	if _, err := svc.ToggleFavorite(ctx, "2"); err != nil {
		t.Fatalf("ToggleFavorite returned error: %v", err)
	}

	got := svc.VisibleBanks(ctx, models.TabAll, "", false)
	if len(got) != 2 {
		t.Fatalf("VisibleBanks returned %d banks, want 2", len(got))
	}
	if got[0].Favorite || !got[1].Favorite {
		t.Fatalf("favorite decoration wrong: %+v", got)
	}
}

func TestDirectoryToggleFavoriteUnknownBank(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, _ := newDirectoryFixture(t)

	_, err := svc.ToggleFavorite(ctx, "missing")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("ToggleFavorite(missing) error = %T, want *errs.NotFoundError", err)
	}
}

func TestDirectoryAddBank(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, listBanks := newDirectoryFixture(t)

	bank, err := svc.AddBank(ctx, "مصرف سرت", "Sirte")
	if err != nil {
		t.Fatalf("AddBank returned error: %v", err)
	}
	if bank.ID != "generated-id" {
		t.Fatalf("AddBank did not use generated id: %+v", bank)
	}
	if !strings.HasPrefix(bank.LogoURL, "https://ui-avatars.com/api/?name=") {
		t.Fatalf("AddBank logo URL = %q", bank.LogoURL)
	}

	all := listBanks()
	if len(all) != 3 || all[2].Name != "مصرف سرت" {
		t.Fatalf("new bank not appended in order: %+v", all)
	}
}

func TestDirectoryAddBranchDefaults(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, _ := newDirectoryFixture(t)

	branch, err := svc.AddBranch(ctx, dto.AddBranchRequest{
		BankID: "2",
		Name:   "فرع جديد",
		IsATM:  true,
	})
	if err != nil {
		t.Fatalf("AddBranch returned error: %v", err)
	}

	if branch.Status != models.StatusUnknown || branch.CrowdLevel != 0 {
		t.Fatalf("new branch must start UNKNOWN/0, got %+v", branch)
	}
	if branch.Address != "Benghazi" {
		t.Fatalf("empty address should default to bank city, got %q", branch.Address)
	}
	if branch.Lat < 32.88 || branch.Lat > 32.98 || branch.Lng < 13.19 || branch.Lng > 13.29 {
		t.Fatalf("branch coordinates outside jitter window: %v,%v", branch.Lat, branch.Lng)
	}
}

func TestDirectoryAddBranchUnknownBank(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, _ := newDirectoryFixture(t)

	_, err := svc.AddBranch(ctx, dto.AddBranchRequest{BankID: "missing", Name: "x"})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("AddBranch error = %T, want *errs.NotFoundError", err)
	}
}

func TestDirectoryBankBranches(t *testing.T) {
	ctx := helpers.TestCtx()
	svc, _ := newDirectoryFixture(t)

	views, err := svc.BankBranches(ctx, "1")
	if err != nil {
		t.Fatalf("BankBranches returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("BankBranches returned %d views, want 1", len(views))
	}
	if views[0].Classification.Label == "" {
		t.Fatalf("branch view missing classification: %+v", views[0])
	}
}
