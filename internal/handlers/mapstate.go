package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalili-app/dalili-backend/internal/dto"
	"github.com/dalili-app/dalili-backend/internal/errs"
	"github.com/dalili-app/dalili-backend/internal/mapview"
	"github.com/dalili-app/dalili-backend/internal/middleware"
	"github.com/dalili-app/dalili-backend/internal/response"
)

type mapHandlers struct {
	ResponseHandler response.ResponseHandler
	DirectorySvc    DirectoryService
	Tiles           dto.TileConfig
}

func NewMapHandlers(deps *Deps) *mapHandlers {
	return &mapHandlers{
		ResponseHandler: deps.ResponseHandler,
		DirectorySvc:    deps.DirectorySvc,
		Tiles:           deps.Tiles,
	}
}

func (h *mapHandlers) MapRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetMap)
	r.Post("/select", h.SelectMarker)
	r.Post("/clear-selection", h.ClearSelection)
	r.Post("/locate", h.Locate)
	r.Post("/reset", h.Reset)
	return r
}

// mapState pairs the surface snapshot with the tile layer config so the
// client renders without further lookups.
type mapState struct {
	mapview.State
	Tiles dto.TileConfig `json:"tiles"`
}

// GetMap reconciles the marker layer against the current branch
// collection and returns the surface.
func (h *mapHandlers) GetMap(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Map.SetBranches(h.DirectorySvc.AllBranches(r.Context()))

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, mapState{
		State: sess.Map.State(),
		Tiles: h.Tiles,
	})
}

// SelectMarker focuses a branch marker and opens the matching bank's
// details screen, mirroring a marker tap.
func (h *mapHandlers) SelectMarker(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectMarkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	sess := middleware.FromContext(r.Context())
	found := sess.Map.Select(req.BranchID)
	if found {
		if branch, err := h.DirectorySvc.GetBranch(r.Context(), req.BranchID); err == nil {
			sess.SelectBank(branch.BankID)
		}
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, map[string]any{
		"found": found,
		"map":   sess.Map.State(),
	})
}

func (h *mapHandlers) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Map.ClearSelection()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Map.State())
}

// Locate folds the browser's geolocation outcome into the surface. The
// browser runs the position query; this endpoint receives either the
// fix or the failure code.
func (h *mapHandlers) Locate(w http.ResponseWriter, r *http.Request) {
	var req dto.LocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	sess := middleware.FromContext(r.Context())
	result := sess.Map.Locate(r.Context(), newBodyLocator(req))

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, map[string]any{
		"locate": result,
		"map":    sess.Map.State(),
	})
}

func (h *mapHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	sess := middleware.FromContext(r.Context())
	sess.Map.Reset()
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, sess.Map.State())
}

// bodyLocator adapts an already-resolved browser geolocation outcome to
// the surface's locator contract.
type bodyLocator struct {
	req dto.LocateRequest
}

// newBodyLocator returns nil when the browser reported no geolocation
// capability at all, which the surface maps to its unsupported message.
func newBodyLocator(req dto.LocateRequest) mapview.Locator {
	if req.Lat == nil && req.Lng == nil && req.ErrorCode == "" {
		return nil
	}
	return bodyLocator{req: req}
}

func (l bodyLocator) Current(_ context.Context) (mapview.LatLng, error) {
	if l.req.ErrorCode == "PERMISSION_DENIED" {
		return mapview.LatLng{}, mapview.ErrPermissionDenied
	}
	if l.req.ErrorCode != "" || l.req.Lat == nil || l.req.Lng == nil {
		msg := l.req.ErrorCode
		if msg == "" {
			msg = "position unavailable"
		}
		return mapview.LatLng{}, errs.NewExternalServiceError("geolocation", msg, true)
	}
	return mapview.LatLng{Lat: *l.req.Lat, Lng: *l.req.Lng}, nil
}
