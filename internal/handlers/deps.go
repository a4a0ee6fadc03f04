package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	DirectorySvc    DirectoryService
	ReportSvc       ReportService
	SummarySvc      SummaryService
	Tiles           dto.TileConfig
}
