// Package layout computes where things are on screen so pointer events can be
// mapped back to the element under the cursor.
package layout

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// RegionKind identifies what a region does when pointed at
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionButton           // Index: section to scroll to
	RegionCard             // Index: project
	RegionDot              // Index: project, Sub: screenshot
	RegionCopy             // Index: 0 email, 1 phone
	RegionSocial           // Index: social link
	RegionNavItem          // Index: section
	RegionNavTheme
)

// Region is an interactive rectangle
type Region struct {
	Kind  RegionKind
	Index int
	Sub   int
	Rect  Rect
}

// HitMap holds the interactive regions of a rendered surface. Later regions
// sit on top of earlier ones.
type HitMap struct {
	regions []Region
}

// Add registers a region
func (h *HitMap) Add(kind RegionKind, index, sub int, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	h.regions = append(h.regions, Region{Kind: kind, Index: index, Sub: sub, Rect: r})
}

// Merge adds every region of other moved by dx, dy
func (h *HitMap) Merge(other *HitMap, dx, dy int) {
	if other == nil {
		return
	}
	for _, r := range other.regions {
		r.Rect = r.Rect.Offset(dx, dy)
		h.regions = append(h.regions, r)
	}
}

// At returns the topmost region containing (x, y)
func (h *HitMap) At(x, y int) (Region, bool) {
	if h == nil {
		return Region{}, false
	}
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return h.regions[i], true
		}
	}
	return Region{}, false
}

// Find returns the topmost region of kind containing (x, y)
func (h *HitMap) Find(kind RegionKind, x, y int) (Region, bool) {
	if h == nil {
		return Region{}, false
	}
	for i := len(h.regions) - 1; i >= 0; i-- {
		r := h.regions[i]
		if r.Kind == kind && r.Rect.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// First returns the first region of kind with the given index
func (h *HitMap) First(kind RegionKind, index int) (Region, bool) {
	if h == nil {
		return Region{}, false
	}
	for _, r := range h.regions {
		if r.Kind == kind && r.Index == index {
			return r, true
		}
	}
	return Region{}, false
}

// Len returns the number of regions
func (h *HitMap) Len() int {
	if h == nil {
		return 0
	}
	return len(h.regions)
}
