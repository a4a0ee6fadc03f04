package dto

import (
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/taxonomy"
)

type AddBranchRequest struct {
	BankID  string `json:"bankId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	IsATM   bool   `json:"isAtm"`
}

// BranchView pairs a branch with its status display metadata so the
// client never re-derives labels or colors.
type BranchView struct {
	models.Branch
	Classification taxonomy.Classification `json:"classification"`
}

func NewBranchView(b *models.Branch) BranchView {
	return BranchView{
		Branch:         *b,
		Classification: taxonomy.Classify(b.Status),
	}
}
