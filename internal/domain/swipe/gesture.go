package swipe

// Gesture es el resultado de soltar la tarjeta.
// @Enum swipe_right, swipe_left, snap_back
type Gesture string

const (
	GestureSwipeRight Gesture = "swipe_right"
	GestureSwipeLeft  Gesture = "swipe_left"
	GestureSnapBack   Gesture = "snap_back"
)

// DefaultThreshold es el desplazamiento (en unidades de pantalla) que hay que superar.
const DefaultThreshold = 300.0

// ResolveDrag decide según el offset horizontal al soltar. La comparación es
// estricta: exactamente ±threshold vuelve a su lugar.
func ResolveDrag(offsetX, threshold float64) Gesture {
	switch {
	case offsetX > threshold:
		return GestureSwipeRight
	case offsetX < -threshold:
		return GestureSwipeLeft
	default:
		return GestureSnapBack
	}
}
