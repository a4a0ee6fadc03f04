package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dalili-app/dalili-backend/internal/models"
)

func filterFixture() ([]*models.Bank, []*models.Branch) {
	banks := []*models.Bank{
		{ID: "1", Name: "مصرف الجمهورية", City: "Tripoli"},
		{ID: "2", Name: "مصرف الوحدة", City: "Benghazi"},
		{ID: "3", Name: "مصرف الصحارى", City: "Tripoli"},
		{ID: "4", Name: "المصرف التجاري الوطني", City: "Misrata"},
	}
	branches := []*models.Branch{
		{ID: "b1", BankID: "1", Name: "فرع الميدان", Address: "ميدان الشهداء، طرابلس", Status: models.StatusAvailable},
		{ID: "b2", BankID: "1", Name: "صراف آلي", Address: "شارع عمر المختار", Status: models.StatusCrowded},
		{ID: "b3", BankID: "2", Name: "فرع بنغازي الرئيسي", Address: "شارع جمال عبد الناصر", Status: models.StatusEmpty},
		{ID: "b4", BankID: "3", Name: "فرع حي الأندلس", Address: "حي الأندلس", Status: models.StatusAvailable},
	}
	return banks, branches
}

func ids(banks []*models.Bank) []string {
	out := make([]string, 0, len(banks))
	for _, b := range banks {
		out = append(out, b.ID)
	}
	return out
}

func TestVisibleBanksNoFiltersReturnsInputOrder(t *testing.T) {
	banks, branches := filterFixture()

	got := VisibleBanks(banks, branches, models.TabAll, "", false, nil)

	if diff := cmp.Diff(banks, got); diff != "" {
		t.Fatalf("unfiltered result differs from input (-want +got):\n%s", diff)
	}
}

func TestVisibleBanksWhitespaceTermPasses(t *testing.T) {
	banks, branches := filterFixture()

	got := VisibleBanks(banks, branches, models.TabAll, "   \t ", false, nil)
	if len(got) != len(banks) {
		t.Fatalf("whitespace-only term filtered banks: got %v", ids(got))
	}
}

func TestVisibleBanksSearchIsCaseInsensitive(t *testing.T) {
	banks, branches := filterFixture()

	got := VisibleBanks(banks, branches, models.TabAll, "TRIPOLI", false, nil)

	want := []string{"1", "3"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("city search mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleBanksSearchMatchesBranchFields(t *testing.T) {
	banks, branches := filterFixture()

	// branch address only, bank name/city do not contain the term
	got := VisibleBanks(banks, branches, models.TabAll, "عمر المختار", false, nil)
	if diff := cmp.Diff([]string{"1"}, ids(got)); diff != "" {
		t.Fatalf("branch address search mismatch (-want +got):\n%s", diff)
	}

	got = VisibleBanks(banks, branches, models.TabAll, "الأندلس", false, nil)
	if diff := cmp.Diff([]string{"3"}, ids(got)); diff != "" {
		t.Fatalf("branch name search mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleBanksFavoritesTabExcludesNonFavorites(t *testing.T) {
	banks, branches := filterFixture()
	favorites := map[string]bool{"2": true}

	combos := []struct {
		term      string
		available bool
	}{
		{"", false},
		{"", true},
		{"مصرف", false},
		{"بنغازي", false},
	}
	for _, c := range combos {
		got := VisibleBanks(banks, branches, models.TabFavorites, c.term, c.available, favorites)
		for _, b := range got {
			if b.ID != "2" {
				t.Fatalf("non-favorite bank %s visible on favorites tab (term=%q available=%v)", b.ID, c.term, c.available)
			}
		}
	}
}

func TestVisibleBanksAvailabilityFilter(t *testing.T) {
	banks, branches := filterFixture()

	got := VisibleBanks(banks, branches, models.TabAll, "", true, nil)

	// bank 2 has only an EMPTY branch, bank 4 has no branches
	want := []string{"1", "3"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("availability filter mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleBanksNoMatchesIsEmptyNotNilError(t *testing.T) {
	banks, branches := filterFixture()

	got := VisibleBanks(banks, branches, models.TabAll, "سبها", false, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}
