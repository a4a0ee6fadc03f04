package mapview

import (
	"context"
	"errors"
	"time"

	"github.com/dalili-app/dalili-backend/pkg/logger"
)

// Locate messages, fixed and user-facing. Permission denial is
// distinguished from any other failure.
const (
	MsgLocateUnsupported = "عذراً، المتصفح لا يدعم تحديد الموقع الجغرافي."
	MsgLocateDenied      = "تم رفض إذن الوصول للموقع."
	MsgLocateFailed      = "تعذر تحديد موقعك. يرجى التحقق من إعدادات الموقع."
)

// ErrPermissionDenied marks a geolocation permission refusal.
var ErrPermissionDenied = errors.New("geolocation permission denied")

const locateTimeout = 10 * time.Second

// Locator is a single-shot, high-accuracy position query with no cached
// fallback.
type Locator interface {
	Current(ctx context.Context) (LatLng, error)
}

type LocateResult struct {
	OK       bool    `json:"ok"`
	Message  string  `json:"message,omitempty"`
	Position *LatLng `json:"position,omitempty"`
}

// Locate requests the device position and, on success, places or
// replaces the single user marker and pans to it at LocateZoom. Any
// failure resolves to a message and leaves the view, the prior user
// marker, and the selection untouched. Never panics or errors past this
// boundary.
func (s *Synchronizer) Locate(ctx context.Context, loc Locator) LocateResult {
	log := logger.FromContext(ctx)

	if loc == nil {
		return LocateResult{Message: MsgLocateUnsupported}
	}

	ctx, cancel := context.WithTimeout(ctx, locateTimeout)
	defer cancel()

	pos, err := loc.Current(ctx)
	if err != nil {
		log.Warn("geolocation failed", "error", err)
		if errors.Is(err, ErrPermissionDenied) {
			return LocateResult{Message: MsgLocateDenied}
		}
		return LocateResult{Message: MsgLocateFailed}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()
	s.userMarker = &pos
	s.center = pos
	s.zoom = LocateZoom
	s.popupOpen = true

	return LocateResult{OK: true, Position: &pos}
}
