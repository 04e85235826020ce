package swing

// Camera is the smoothed horizontal view offset.
type Camera struct {
	X float64
}

// Follow eases the camera toward x minus lead by the smoothing factor.
func (c *Camera) Follow(x, lead, smooth float64) {
	c.X += (x - c.X - lead) * smooth
}
