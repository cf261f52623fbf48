package core

// Shape is the kind of primitive a DrawCommand paints.
type Shape int

const (
	ShapeRect   Shape = iota // Filled rectangle
	ShapeCircle              // Filled circle inscribed in Bounds
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// DrawCommand is one entry of the ordered list a frame is painted from.
type DrawCommand struct {
	Shape  Shape
	Bounds Rect
	Color  Color
}
