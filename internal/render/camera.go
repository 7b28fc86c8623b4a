package render

// Camera translates between world pixels and terminal cells. The whole
// world is fitted into the viewport, so there is no scrolling.
type Camera struct {
	WorldWidth  float64
	WorldHeight float64
	ViewWidth   int // in terminal columns
	ViewHeight  int // in terminal rows
	// OffsetY is the first terminal row of the viewport.
	OffsetY int
}

// NewCamera fits a world of worldW×worldH pixels into viewW×viewH cells
// starting at row offY.
func NewCamera(worldW, worldH float64, viewW, viewH, offY int) *Camera {
	return &Camera{WorldWidth: worldW, WorldHeight: worldH, ViewWidth: viewW, ViewHeight: viewH, OffsetY: offY}
}

// Fit updates the world and viewport sizes.
func (c *Camera) Fit(worldW, worldH float64, viewW, viewH int) {
	c.WorldWidth, c.WorldHeight = worldW, worldH
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return 0, 0, false
	}
	sx = int(wx * float64(c.ViewWidth) / c.WorldWidth)
	row := int(wy * float64(c.ViewHeight) / c.WorldHeight)
	sy = row + c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && row >= 0 && row < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to the world position of the
// cell's top-left corner.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return 0, 0
	}
	wx := float64(sx) * c.WorldWidth / float64(c.ViewWidth)
	wy := float64(sy-c.OffsetY) * c.WorldHeight / float64(c.ViewHeight)
	return wx, wy
}
