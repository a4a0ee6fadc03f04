package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/response"
)

type SummaryService interface {
	Analyze(ctx context.Context, bank *models.Bank) string
}

type summaryHandlers struct {
	ResponseHandler response.ResponseHandler
	DirectorySvc    DirectoryService
	SummarySvc      SummaryService
}

func NewSummaryHandlers(deps *Deps) *summaryHandlers {
	return &summaryHandlers{
		ResponseHandler: deps.ResponseHandler,
		DirectorySvc:    deps.DirectorySvc,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *summaryHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/{bankId}", h.Analyze)
	return r
}

// Analyze produces the liquidity summary for a bank. The service never
// fails; credential and upstream problems resolve to fixed prose, so
// this handler only errors on an unknown bank.
func (h *summaryHandlers) Analyze(w http.ResponseWriter, r *http.Request) {
	bankID := chi.URLParam(r, "bankId")

	bank, err := h.DirectorySvc.GetBank(r.Context(), bankID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	sess := middleware.FromContext(r.Context())
	if sess != nil {
		sess.SetAnalyzing(true)
	}

	analysis := h.SummarySvc.Analyze(r.Context(), bank)

	if sess != nil && sess.SelectedBankID() == bankID {
		sess.SetSummary(analysis)
	} else if sess != nil {
		// the client moved on mid-flight; drop the stale result
		sess.SetAnalyzing(false)
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, dto.SummaryResponse{
		BankID:   bankID,
		Analysis: analysis,
	})
}
