package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/response"
)

type sessionHandlers struct {
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
}

func NewSessionHandlers(deps *Deps) *sessionHandlers {
	return &sessionHandlers{
		ResponseHandler: deps.ResponseHandler,
		Validate:        deps.Validate,
	}
}

func (h *sessionHandlers) SessionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetSession)
	r.Post("/auth", h.Authenticate)
	r.Post("/navigate", h.Navigate)
	r.Post("/back", h.Back)
	r.Post("/select-bank/{bankId}", h.SelectBank)
	r.Post("/search", h.Search)
	r.Post("/tab", h.SetTab)
	r.Post("/availability", h.SetAvailability)
	r.Post("/report-target", h.SetReportTarget)
	r.Post("/theme", h.ToggleTheme)
	r.Post("/toast/dismiss", h.DismissToast)
	return r
}

func (h *sessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

// Authenticate covers both login and guest entry; the two paths are
// indistinguishable once inside.
func (h *sessionHandlers) Authenticate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Authenticate()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) Navigate(w http.ResponseWriter, r *http.Request) {
	var req dto.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	view, ok := models.ParseView(req.View)
	if !ok {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("unknown view: "+req.View))
		return
	}

	sess := middleware.FromContext(r.Context())
	if !sess.Navigate(view) {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("view not directly reachable: "+req.View))
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) Back(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Back()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) SelectBank(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.SelectBank(chi.URLParam(r, "bankId"))
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

// Search records raw input; the term only takes effect after the
// debounce window. The snapshot's searching flag tells the client to
// keep the spinner up.
func (h *sessionHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	sess := middleware.FromContext(r.Context())
	sess.SetSearch(req.Term)
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) SetTab(w http.ResponseWriter, r *http.Request) {
	var req dto.TabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	tab, ok := models.ParseTab(req.Tab)
	if !ok {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("unknown tab: "+req.Tab))
		return
	}

	sess := middleware.FromContext(r.Context())
	sess.SetTab(tab)
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	sess := middleware.FromContext(r.Context())
	sess.SetAvailableOnly(req.Enabled)
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

// SetReportTarget opens the report sheet for a branch; an empty id
// closes it.
func (h *sessionHandlers) SetReportTarget(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	sess := middleware.FromContext(r.Context())
	sess.SetReportTarget(req.BranchID)
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.ToggleTheme()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}

func (h *sessionHandlers) DismissToast(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Toasts.Dismiss()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Snapshot())
}
