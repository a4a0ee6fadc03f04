package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/mapview"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/response"
)

// Toast messages shown after admin data entry.
const (
	bankAddedToast   = "تم إضافة المصرف بنجاح!"
	branchAddedToast = "تم إضافة الفرع بنجاح!"
)

type DirectoryService interface {
	VisibleBanks(ctx context.Context, tab models.HomeTab, searchTerm string, availableOnly bool) []dto.DirectoryBank
	GetBank(ctx context.Context, id string) (*models.Bank, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	AllBranches(ctx context.Context) []*models.Branch
	BankBranches(ctx context.Context, bankID string) ([]dto.BranchView, error)
	AddBank(ctx context.Context, name, city string) (*models.Bank, error)
	AddBranch(ctx context.Context, req dto.AddBranchRequest) (*models.Branch, error)
	ToggleFavorite(ctx context.Context, bankID string) (bool, error)
}

type bankHandlers struct {
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	DirectorySvc    DirectoryService
}

func NewBankHandlers(deps *Deps) *bankHandlers {
	return &bankHandlers{
		ResponseHandler: deps.ResponseHandler,
		Validate:        deps.Validate,
		DirectorySvc:    deps.DirectorySvc,
	}
}

func (h *bankHandlers) BankRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBanks)
	r.Post("/", h.AddBank)
	r.Get("/{bankId}", h.GetBank)
	r.Post("/{bankId}/favorite", h.ToggleFavorite)
	return r
}

func (h *bankHandlers) BranchRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBranches)
	r.Post("/", h.AddBranch)
	r.Get("/{branchId}/map", h.BranchMiniMap)
	return r
}

// ListBranches returns every branch with display metadata, the dataset
// behind the shared map screen.
func (h *bankHandlers) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches := h.DirectorySvc.AllBranches(r.Context())
	out := make([]dto.BranchView, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.NewBranchView(b))
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, out)
}

// ListBanks renders the home list through the caller's current tab,
// settled search term, and availability filter.
func (h *bankHandlers) ListBanks(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	banks := h.DirectorySvc.VisibleBanks(r.Context(), sess.Tab(), sess.EffectiveSearch(), sess.AvailableOnly())
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, banks)
}

func (h *bankHandlers) GetBank(w http.ResponseWriter, r *http.Request) {
	bankID := chi.URLParam(r, "bankId")

	bank, err := h.DirectorySvc.GetBank(r.Context(), bankID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	branches, err := h.DirectorySvc.BankBranches(r.Context(), bankID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, dto.BankDetails{
		Bank:     *bank,
		Branches: branches,
	})
}

func (h *bankHandlers) AddBank(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(err.Error()))
		return
	}

	bank, err := h.DirectorySvc.AddBank(r.Context(), req.Name, req.City)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	// saving from the admin form returns the client home with a toast
	if sess := middleware.FromContext(r.Context()); sess != nil {
		sess.Toasts.Push(bankAddedToast, "success")
		sess.Navigate(models.ViewHome)
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, bank)
}

func (h *bankHandlers) AddBranch(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(err.Error()))
		return
	}

	branch, err := h.DirectorySvc.AddBranch(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if sess := middleware.FromContext(r.Context()); sess != nil {
		sess.Toasts.Push(branchAddedToast, "success")
		sess.Navigate(models.ViewHome)
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, dto.NewBranchView(branch))
}

// BranchMiniMap renders the static single-branch preview used on the
// branch cards.
func (h *bankHandlers) BranchMiniMap(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchId")

	branch, err := h.DirectorySvc.GetBranch(r.Context(), branchID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, mapview.Mini(branch))
}

func (h *bankHandlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	bankID := chi.URLParam(r, "bankId")

	favorite, err := h.DirectorySvc.ToggleFavorite(r.Context(), bankID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, map[string]any{
		"bankId":   bankID,
		"favorite": favorite,
	})
}
