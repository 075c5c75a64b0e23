package tiling

// Shape is the closed set of cell outlines produced by the tiling.
type Shape uint8

const (
	ShapePentagon Shape = 0x1 // ShapePentagon is a resolution-0 face.
	ShapeQuad     Shape = 0x2 // ShapeQuad is any cell at resolution 1 or finer.
)

// Corners returns the number of polygon corners of the shape.
func (s Shape) Corners() int {
	switch s {
	case ShapePentagon:
		return 5
	case ShapeQuad:
		return 4
	default:
		return 0
	}
}

func (s Shape) String() string {
	switch s {
	case ShapePentagon:
		return "Pentagon"
	case ShapeQuad:
		return "Quad"
	default:
		return "Unknown"
	}
}

// ShapeAt returns the shape of cells at the given resolution.
func ShapeAt(resolution int) Shape {
	if resolution == 0 {
		return ShapePentagon
	}

	return ShapeQuad
}
