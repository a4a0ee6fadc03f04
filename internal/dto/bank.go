package dto

import (
	"github.com/dalili-app/dalili-backend/internal/models"
)

type AddBankRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

// DirectoryBank is a bank decorated with the caller's favorite flag.
type DirectoryBank struct {
	models.Bank
	Favorite bool `json:"favorite"`
}

// BankDetails is the details screen payload: the bank plus its branches
// with display metadata.
type BankDetails struct {
	Bank     models.Bank  `json:"bank"`
	Branches []BranchView `json:"branches"`
}
