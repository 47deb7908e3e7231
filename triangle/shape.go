package triangle

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned for a tag or Variant that does not name
// one of the six shapes.
var ErrInvalidConfiguration = errors.New("invalid triangle configuration")

// Variant selects the vertex set and color of a Triangle.
type Variant int

// Variants are named after their fill color.  Their integer values match the
// configuration tags 1 through 6 used by host applications.
const (
	Maroon Variant = iota + 1
	DarkSlateGray
	MediumBlue
	LimeGreen
	IndianRed
	SlateBlue
)

// Shape is the fixed data drawn for a Variant.  Vertices holds three xyz
// positions in counterclockwise order.  Color is RGBA with alpha fixed at 1.
type Shape struct {
	Vertices [coordsPerVertex * vertexCount]float32
	Color    [4]float32
}

const (
	coordsPerVertex = 3
	vertexCount     = 3
	vertexStride    = coordsPerVertex * 4 // 4 bytes per float32
)

var shapes = [...]Shape{
	Maroon: {
		Vertices: [9]float32{
			0.0, 0.5, 0.0, // top
			-0.5, 0.0, 0.0, // bottom left
			0.0, 0.0, 0.5, // bottom right
		},
		Color: [4]float32{0.502, 0.000, 0.000, 1},
	},
	DarkSlateGray: {
		Vertices: [9]float32{
			0.0, 0.5, 0.0,
			0.0, 0.0, 0.5,
			0.5, 0.0, 0.0,
		},
		Color: [4]float32{0.184, 0.310, 0.310, 1},
	},
	MediumBlue: {
		Vertices: [9]float32{
			0.0, 0.5, 0.0,
			0.5, 0.0, 0.0,
			0.0, 0.0, -0.5,
		},
		Color: [4]float32{0.000, 0.000, 0.804, 1},
	},
	LimeGreen: {
		Vertices: [9]float32{
			0.0, 0.5, 0.0,
			-0.5, 0.0, 0.0,
			0.0, 0.0, -0.5,
		},
		Color: [4]float32{0.196, 0.804, 0.196, 1},
	},
	IndianRed: {
		Vertices: [9]float32{
			0.0, 0.0, -0.5,
			-0.5, 0.0, 0.0,
			0.0, 0.0, 0.5,
		},
		Color: [4]float32{0.804, 0.361, 0.361, 1},
	},
	SlateBlue: {
		Vertices: [9]float32{
			0.0, 0.0, 0.5,
			0.5, 0.0, 0.0,
			0.0, 0.0, -0.5,
		},
		Color: [4]float32{0.416, 0.353, 0.804, 1},
	},
}

var variantNames = [...]string{
	Maroon:        "maroon",
	DarkSlateGray: "darkslategray",
	MediumBlue:    "mediumblue",
	LimeGreen:     "limegreen",
	IndianRed:     "indianred",
	SlateBlue:     "slateblue",
}

// Variants returns every valid Variant in tag order.
func Variants() []Variant {
	return []Variant{Maroon, DarkSlateGray, MediumBlue, LimeGreen, IndianRed, SlateBlue}
}

// ParseTag converts an integer configuration tag in [1, 6] to a Variant.
func ParseTag(tag int) (Variant, error) {
	v := Variant(tag)
	if !v.Valid() {
		return 0, fmt.Errorf("tag %d: %w", tag, ErrInvalidConfiguration)
	}
	return v, nil
}

// Valid reports whether v names one of the six shapes.
func (v Variant) Valid() bool {
	return v >= Maroon && v <= SlateBlue
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ShapeOf returns the vertices and color for v.
func ShapeOf(v Variant) (Shape, error) {
	if !v.Valid() {
		return Shape{}, fmt.Errorf("%v: %w", v, ErrInvalidConfiguration)
	}
	return shapes[v], nil
}
