package dto

type SummaryResponse struct {
	BankID   string `json:"bankId"`
	Analysis string `json:"analysis"`
}
