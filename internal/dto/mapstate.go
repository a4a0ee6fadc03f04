package dto

type SelectMarkerRequest struct {
	BranchID string `json:"branchId" validate:"required"`
}

// LocateRequest carries the outcome of the browser's single-shot
// geolocation query: either coordinates or a failure code.
type LocateRequest struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	ErrorCode string   `json:"errorCode"` // PERMISSION_DENIED or any other failure
}

type TileConfig struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}
