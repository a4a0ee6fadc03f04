// Package mapview owns the map surface state for one client: marker
// reconciliation from the branch collection, the selected-marker focus
// state, the single user-location marker, and view reset. The surface is
// created once and mutated in place; the client renders State snapshots
// without ever recreating its map widget.
package mapview

import (
	"sync"

	"github.com/dalili-app/dalili-backend/internal/models"
	"github.com/dalili-app/dalili-backend/internal/taxonomy"
)

const (
	DefaultZoom = 12
	SelectZoom  = 15
	LocateZoom  = 14
	MiniZoom    = 15
)

// DefaultCenter is central Tripoli.
var DefaultCenter = LatLng{Lat: 32.8872, Lng: 13.1913}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Marker struct {
	BranchID string `json:"branchId"`
	Position LatLng `json:"position"`
	ColorHex string `json:"colorHex"`
	Label    string `json:"label"`
	Popup    string `json:"popup"`
}

// State is a renderable snapshot of the surface.
type State struct {
	Initialized bool     `json:"initialized"`
	Interactive bool     `json:"interactive"`
	Center      LatLng   `json:"center"`
	Zoom        int      `json:"zoom"`
	Markers     []Marker `json:"markers"`
	SelectedID  string   `json:"selectedId,omitempty"`
	PopupOpen   bool     `json:"popupOpen"`
	UserMarker  *LatLng  `json:"userMarker,omitempty"`
}

type Synchronizer struct {
	mu          sync.Mutex
	initialized bool
	center      LatLng
	zoom        int
	markers     []Marker
	selectedID  string
	popupOpen   bool
	userMarker  *LatLng
	fitted      bool
}

func New() *Synchronizer {
	return &Synchronizer{}
}

// ensureInit creates the surface once: default center and zoom, empty
// marker layer. Later branch updates never recreate it.
func (s *Synchronizer) ensureInit() {
	if s.initialized {
		return
	}
	s.initialized = true
	s.center = DefaultCenter
	s.zoom = DefaultZoom
}

// SetBranches reconciles the branch collection into the marker layer:
// all markers are cleared and recreated, colored by status
// classification. On the first non-empty population, with no selection
// and no user marker placed, the view is fitted to the bounding box of
// all branch coordinates (capped at SelectZoom). Selection survives as
// long as its branch still exists.
func (s *Synchronizer) SetBranches(branches []*models.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()

	s.markers = s.markers[:0]
	selectionAlive := false
	for _, b := range branches {
		s.markers = append(s.markers, newMarker(b))
		if b.ID == s.selectedID {
			selectionAlive = true
		}
	}
	if s.selectedID != "" && !selectionAlive {
		s.selectedID = ""
		s.popupOpen = false
	}

	if !s.fitted && len(s.markers) > 0 && s.selectedID == "" && s.userMarker == nil {
		points := make([]LatLng, 0, len(s.markers))
		for _, m := range s.markers {
			points = append(points, m.Position)
		}
		s.center, s.zoom = fitCenterZoom(points)
		s.fitted = true
	}
}

// Select focuses a marker: pans to it at SelectZoom and opens its popup.
// An unknown id is a no-op and reports false. Selecting never re-fits
// bounds.
func (s *Synchronizer) Select(branchID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()

	for _, m := range s.markers {
		if m.BranchID == branchID {
			s.selectedID = branchID
			s.center = m.Position
			s.zoom = SelectZoom
			s.popupOpen = true
			return true
		}
	}
	return false
}

// ClearSelection drops the focus state, as when the user clicks empty
// map area. The view stays where it is.
func (s *Synchronizer) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.popupOpen = false
}

// Reset returns the view to the default center and zoom, closes any open
// popup, and clears the selection. Marker data is untouched. Idempotent.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()
	s.center = DefaultCenter
	s.zoom = DefaultZoom
	s.selectedID = ""
	s.popupOpen = false
}

// State returns a snapshot safe for concurrent use.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Initialized: s.initialized,
		Interactive: true,
		Center:      s.center,
		Zoom:        s.zoom,
		Markers:     append([]Marker{}, s.markers...),
		SelectedID:  s.selectedID,
		PopupOpen:   s.popupOpen,
	}
	if s.userMarker != nil {
		um := *s.userMarker
		st.UserMarker = &um
	}
	return st
}

// Mini is the per-card map variant: the same surface model configured
// down to a non-interactive single-marker view.
func Mini(branch *models.Branch) State {
	return State{
		Initialized: true,
		Interactive: false,
		Center:      LatLng{Lat: branch.Lat, Lng: branch.Lng},
		Zoom:        MiniZoom,
		Markers:     []Marker{newMarker(branch)},
	}
}

func newMarker(b *models.Branch) Marker {
	c := taxonomy.Classify(b.Status)
	return Marker{
		BranchID: b.ID,
		Position: LatLng{Lat: b.Lat, Lng: b.Lng},
		ColorHex: c.ColorHex,
		Label:    c.Label,
		Popup:    b.Name + "\n" + b.Address,
	}
}
