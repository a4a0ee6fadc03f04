package services

import (
	"strings"

	"github.com/dalili-app/dalili-backend/internal/models"
)

// VisibleBanks derives the home-screen bank list from the full
// collections and the active filters. The result preserves the insertion
// order of banks. A bank is included only when it passes all three
// predicates: tab membership, search match, and availability.
func VisibleBanks(
	banks []*models.Bank,
	branches []*models.Branch,
	tab models.HomeTab,
	searchTerm string,
	availableOnly bool,
	favorites map[string]bool,
) []*models.Bank {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	visible := make([]*models.Bank, 0, len(banks))
	for _, bank := range banks {
		if tab == models.TabFavorites && !favorites[bank.ID] {
			continue
		}
		if term != "" && !matchesSearch(bank, branches, term) {
			continue
		}
		if availableOnly && !hasAvailableBranch(bank.ID, branches) {
			continue
		}
		visible = append(visible, bank)
	}
	return visible
}

// matchesSearch checks the bank's own name and city, then falls through
// to the names and addresses of its branches. term must already be
// trimmed and lowercased.
func matchesSearch(bank *models.Bank, branches []*models.Branch, term string) bool {
	if strings.Contains(strings.ToLower(bank.Name), term) ||
		strings.Contains(strings.ToLower(bank.City), term) {
		return true
	}
	for _, br := range branches {
		if br.BankID != bank.ID {
			continue
		}
		if strings.Contains(strings.ToLower(br.Name), term) ||
			strings.Contains(strings.ToLower(br.Address), term) {
			return true
		}
	}
	return false
}

func hasAvailableBranch(bankID string, branches []*models.Branch) bool {
	for _, br := range branches {
		if br.BankID == bankID && br.Status == models.StatusAvailable {
			return true
		}
	}
	return false
}
