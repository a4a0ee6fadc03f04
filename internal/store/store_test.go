package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/pkg/helpers"
)

func TestBankStorePreservesInsertionOrder(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBankStore()

	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		if err := s.Create(ctx, &models.Bank{ID: id, Name: "bank " + id}); err != nil {
			t.Fatalf("Create(%s) returned error: %v", id, err)
		}
	}

	banks := s.List(ctx)
	if len(banks) != len(ids) {
		t.Fatalf("List returned %d banks, want %d", len(banks), len(ids))
	}
	for i, b := range banks {
		if b.ID != ids[i] {
			t.Fatalf("List()[%d].ID = %s, want %s", i, b.ID, ids[i])
		}
	}
}

func TestBankStoreRejectsDuplicateID(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBankStore()

	if err := s.Create(ctx, &models.Bank{ID: "1"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	err := s.Create(ctx, &models.Bank{ID: "1"})
	if _, ok := err.(*errs.AlreadyExistsError); !ok {
		t.Fatalf("duplicate Create error = %T, want *errs.AlreadyExistsError", err)
	}
}

func TestBankStoreListReturnsCopies(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBankStore()
	if err := s.Create(ctx, &models.Bank{ID: "1", Name: "original"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	s.List(ctx)[0].Name = "mutated"

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "original" {
		t.Fatalf("store state leaked through List copy: %q", got.Name)
	}
}

func TestBranchStoreApplyReport(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBranchStore()
	if err := s.Create(ctx, &models.Branch{ID: "b2", BankID: "1", Status: models.StatusUnknown}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	at := time.Date(2026, 3, 5, 11, 30, 0, 0, time.UTC)
	updated, ok := s.ApplyReport(ctx, "b2", models.StatusCrowded, 90, at)
	if !ok {
		t.Fatalf("ApplyReport reported miss for existing branch")
	}
	if updated.Status != models.StatusCrowded || updated.CrowdLevel != 90 || !updated.LastUpdate.Equal(at) {
		t.Fatalf("unexpected branch after report: %+v", updated)
	}

	stored, err := s.Get(ctx, "b2")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.Status != models.StatusCrowded {
		t.Fatalf("mutation not applied in place: %+v", stored)
	}
}

func TestBranchStoreApplyReportMissIsNoOp(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBranchStore()

	if _, ok := s.ApplyReport(ctx, "nope", models.StatusEmpty, 0, time.Now()); ok {
		t.Fatalf("ApplyReport on unknown id reported ok")
	}
}

func TestBranchStoreListByBank(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewBranchStore()
	for _, b := range []*models.Branch{
		{ID: "b1", BankID: "1"},
		{ID: "b2", BankID: "2"},
		{ID: "b3", BankID: "1"},
	} {
		if err := s.Create(ctx, b); err != nil {
			t.Fatalf("Create(%s) returned error: %v", b.ID, err)
		}
	}

	got := s.ListByBank(ctx, "1")
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Fatalf("ListByBank returned %+v", got)
	}
}

func TestFavoriteStoreToggle(t *testing.T) {
	ctx := helpers.TestCtx()
	s := NewFavoriteStore()

	if !s.Toggle(ctx, "1") {
		t.Fatalf("first Toggle should add")
	}
	if !s.Has(ctx, "1") {
		t.Fatalf("Has should report membership")
	}
	if s.Toggle(ctx, "1") {
		t.Fatalf("second Toggle should remove")
	}
	if s.Has(ctx, "1") {
		t.Fatalf("membership should be gone after second Toggle")
	}
}

func TestDefaultSeedApply(t *testing.T) {
	ctx := helpers.TestCtx()
	banks := NewBankStore()
	branches := NewBranchStore()
	now := time.Now()

	if err := DefaultSeed().Apply(ctx, banks, branches, now); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if got := len(banks.List(ctx)); got != 6 {
		t.Fatalf("seeded %d banks, want 6", got)
	}
	all := branches.List(ctx)
	if len(all) != 4 {
		t.Fatalf("seeded %d branches, want 4", len(all))
	}
	for _, b := range all {
		if b.ID == "b2" {
			if !b.IsATM || b.Status != models.StatusCrowded {
				t.Fatalf("b2 seeded wrong: %+v", b)
			}
			if age := now.Sub(b.LastUpdate); age < 29*time.Minute || age > 31*time.Minute {
				t.Fatalf("b2 LastUpdate not backdated ~30m: %v", age)
			}
		}
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `
banks:
  - id: "10"
    name: bank ten
    city: Sabha
branches:
  - id: x1
    bankId: "10"
    name: main
    lat: 27.03
    lng: 14.43
    status: AVAILABLE
    crowdLevel: 20
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp seed: %v", err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile returned error: %v", err)
	}
	if len(seed.Banks) != 1 || len(seed.Branches) != 1 {
		t.Fatalf("unexpected seed contents: %+v", seed)
	}

	ctx := helpers.TestCtx()
	banks := NewBankStore()
	branches := NewBranchStore()
	if err := seed.Apply(ctx, banks, branches, time.Now()); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
}

func TestSeedApplyRejectsOrphanBranch(t *testing.T) {
	ctx := helpers.TestCtx()
	seed := &Seed{
		Branches: []seedBranch{{ID: "b1", BankID: "missing"}},
	}
	if err := seed.Apply(ctx, NewBankStore(), NewBranchStore(), time.Now()); err == nil {
		t.Fatalf("expected error for branch referencing unknown bank")
	}
}
