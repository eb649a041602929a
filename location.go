package decor

import "fmt"

// Location classifies a point of a decorated window.
//
// The resizing values are bit sets: top and bottom occupy bits 0 and 1,
// left and right bits 2 and 3, so a corner is the OR of its two edges and
// l&LocationResizingMask != 0 tests for any resize grip.
type Location uint8

const (
	LocationInterior            Location = 0
	LocationResizingTop         Location = 1
	LocationResizingBottom      Location = 2
	LocationResizingLeft        Location = 4
	LocationResizingTopLeft     Location = 5
	LocationResizingBottomLeft  Location = 6
	LocationResizingRight       Location = 8
	LocationResizingTopRight    Location = 9
	LocationResizingBottomRight Location = 10
	LocationResizingMask        Location = 15
	LocationExterior            Location = 16
	LocationTitlebar            Location = 17
	LocationClientArea          Location = 18
)

// GripSize is the thickness of the resize grips inside the margin.
const GripSize = 8

var locationNames = map[Location]string{
	LocationInterior:            "Interior",
	LocationResizingTop:         "ResizingTop",
	LocationResizingBottom:      "ResizingBottom",
	LocationResizingLeft:        "ResizingLeft",
	LocationResizingTopLeft:     "ResizingTopLeft",
	LocationResizingBottomLeft:  "ResizingBottomLeft",
	LocationResizingRight:       "ResizingRight",
	LocationResizingTopRight:    "ResizingTopRight",
	LocationResizingBottomRight: "ResizingBottomRight",
	LocationResizingMask:        "ResizingMask",
	LocationExterior:            "Exterior",
	LocationTitlebar:            "Titlebar",
	LocationClientArea:          "ClientArea",
}

func (l Location) String() string {
	if s, ok := locationNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Location(%d)", uint8(l))
}

// IsResizing reports whether l is one of the eight resize grips.
func (l Location) IsResizing() bool {
	return l&LocationResizingMask != 0 && l < LocationExterior
}

// Valid reports whether l is a value HitTest can return: Exterior,
// Titlebar, ClientArea or a resize grip.
func (l Location) Valid() bool {
	switch l {
	case LocationExterior, LocationTitlebar, LocationClientArea,
		LocationResizingTop, LocationResizingBottom,
		LocationResizingLeft, LocationResizingRight,
		LocationResizingTopLeft, LocationResizingTopRight,
		LocationResizingBottomLeft, LocationResizingBottomRight:
		return true
	}
	return false
}

// HitTest classifies (x, y) in a frame of the given outer size whose
// border starts margin pixels inside the edge and whose titlebar ends
// topMargin pixels below the border.
//
// Each axis is split into exterior, a GripSize resize band, interior, a
// second resize band and exterior again. The two results are ORed; any
// exterior axis makes the point exterior, and an interior point is
// titlebar above margin+topMargin and client area below.
func HitTest(x, y, width, height, margin, topMargin int) Location {
	h := axis(x, width, margin, LocationResizingLeft, LocationResizingRight)
	v := axis(y, height, margin, LocationResizingTop, LocationResizingBottom)

	l := h | v
	switch {
	case l&LocationExterior != 0:
		return LocationExterior
	case l != LocationInterior:
		return l
	case y < margin+topMargin:
		return LocationTitlebar
	default:
		return LocationClientArea
	}
}

func axis(pos, size, margin int, low, high Location) Location {
	switch {
	case pos < margin:
		return LocationExterior
	case pos < margin+GripSize:
		return low
	case pos < size-margin-GripSize:
		return LocationInterior
	case pos < size-margin:
		return high
	default:
		return LocationExterior
	}
}
