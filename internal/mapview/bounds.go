package mapview

import (
	"math"
)

// Bounding-box fit against a nominal mobile viewport, mirroring how the
// client's map widget computes fitBounds with padding and a zoom cap.
const (
	fitViewportW = 640
	fitViewportH = 480
	fitPadding   = 50
	maxFitZoom   = 15
	tileSize     = 256
)

// project maps a coordinate to Web Mercator world space, x and y in
// [0,1] at zoom zero.
func project(p LatLng) (float64, float64) {
	x := (p.Lng + 180) / 360

	latRad := p.Lat * math.Pi / 180
	y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2
	return x, y
}

func unproject(x, y float64) LatLng {
	lng := x*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*y))) * 180 / math.Pi
	return LatLng{Lat: lat, Lng: lng}
}

// fitCenterZoom returns the center and the largest integer zoom (capped
// at maxFitZoom) at which every point fits inside the padded viewport.
// A single point, or coincident points, take the cap.
func fitCenterZoom(points []LatLng) (LatLng, int) {
	if len(points) == 0 {
		return DefaultCenter, DefaultZoom
	}

	minX, minY := project(points[0])
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		x, y := project(p)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	center := unproject((minX+maxX)/2, (minY+maxY)/2)

	dx := maxX - minX
	dy := maxY - minY
	usableW := float64(fitViewportW - 2*fitPadding)
	usableH := float64(fitViewportH - 2*fitPadding)

	zoom := float64(maxFitZoom)
	if dx > 0 {
		zoom = math.Min(zoom, math.Log2(usableW/(dx*tileSize)))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(usableH/(dy*tileSize)))
	}

	z := int(math.Floor(zoom))
	if z < 0 {
		z = 0
	}
	if z > maxFitZoom {
		z = maxFitZoom
	}
	return center, z
}
