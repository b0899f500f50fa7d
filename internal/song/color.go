package song

// Color is an RGBA color with float channels. Colors compare by exact value.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

var (
	// DefaultLeftColor is the default left environment color. Obstacles share it.
	DefaultLeftColor = RGB(1, 0, 0)
	// DefaultRightColor is the default right environment color.
	DefaultRightColor = RGB(0, 0.282353, 1)
	// DefaultLeftNote is the default left note color.
	DefaultLeftNote = RGB(0.7352942, 0, 0)
	// DefaultRightNote is the default right note color.
	DefaultRightNote = RGB(0, 0.3701827, 0.7352942)
)
