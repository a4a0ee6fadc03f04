package dto

type SubmitReportRequest struct {
	Status string `json:"status" validate:"required"`
}
