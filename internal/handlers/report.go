package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/response"
	"github.com/dalili-app/dalili-backend/internal/services"
)

type ReportService interface {
	Submit(ctx context.Context, branchID, userID string, status models.LiquidityStatus) (*models.Report, *models.Branch, bool, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	ReportSvc       ReportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		Validate:        deps.Validate,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/{branchId}", h.SubmitReport)
	return r
}

// SubmitReport folds a crowd-sourced status into a branch. A report for
// a branch that has vanished is acknowledged without effect; the sheet
// closes either way.
func (h *reportHandlers) SubmitReport(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchId")

	var req dto.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(err.Error()))
		return
	}

	status, ok := models.ParseStatus(req.Status)
	if !ok || !status.Reportable() {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("status is not a selectable report outcome: "+req.Status))
		return
	}

	sess := middleware.FromContext(r.Context())

	var userID string
	if sess != nil {
		userID = sess.ID()
	}
	_, branch, applied, err := h.ReportSvc.Submit(r.Context(), branchID, userID, status)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	// the sheet closes and the confirmation shows even when the branch
	// vanished underneath the report
	if sess != nil {
		sess.SetReportTarget("")
		sess.Toasts.Push(services.ReportConfirmation, "success")
	}

	resp := map[string]any{"applied": applied}
	if applied {
		resp["branch"] = dto.NewBranchView(branch)
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, resp)
}
