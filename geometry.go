package gavui

import "math"

// Point is a 2D position. The origin is the top-left of the host surface,
// with Y increasing downward.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale returns p multiplied component-wise by f.
func (p Point) Scale(f float32) Point { return Point{p.X * f, p.Y * f} }

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float32 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Box is an axis-aligned rectangle. bottomRight is always derived from
// topLeft and the size; width and height are never negative.
type Box struct {
	topLeft     Point
	bottomRight Point
	width       float32
	height      float32
}

// NewBox returns a box with the given top-left corner and size. Negative
// sizes are clamped to zero.
func NewBox(topLeft Point, width, height float32) Box {
	b := Box{width: nonNegative(width), height: nonNegative(height)}
	b.SetTopLeft(topLeft)
	return b
}

// BoxAt is NewBox(Pt(x, y), width, height).
func BoxAt(x, y, width, height float32) Box {
	return NewBox(Pt(x, y), width, height)
}

// Copy returns an independent snapshot of b.
func (b Box) Copy() Box { return NewBox(b.topLeft, b.width, b.height) }

func (b Box) TopLeft() Point     { return b.topLeft }
func (b Box) BottomRight() Point { return b.bottomRight }
func (b Box) Width() float32     { return b.width }
func (b Box) Height() float32    { return b.height }
func (b Box) X1() float32        { return b.topLeft.X }
func (b Box) Y1() float32        { return b.topLeft.Y }
func (b Box) X2() float32        { return b.bottomRight.X }
func (b Box) Y2() float32        { return b.bottomRight.Y }

// Middle returns the centre of the box.
func (b Box) Middle() Point {
	return b.topLeft.Add(Point{b.width / 2, b.height / 2})
}

// SetTopLeft moves the box so its top-left corner is p.
func (b *Box) SetTopLeft(p Point) {
	b.topLeft = p
	b.bottomRight = p.Add(Point{b.width, b.height})
}

// SetMiddle moves the box so its centre is p.
func (b *Box) SetMiddle(p Point) {
	b.SetTopLeft(p.Sub(Point{b.width / 2, b.height / 2}))
}

// SetSize resizes the box keeping its top-left corner.
func (b *Box) SetSize(width, height float32) {
	b.width = nonNegative(width)
	b.height = nonNegative(height)
	b.SetTopLeft(b.topLeft)
}

// Contains reports whether (x, y) lies inside the box. Points on the edge are
// considered inside.
func (b Box) Contains(x, y float32) bool {
	return x >= b.topLeft.X && x <= b.bottomRight.X &&
		y >= b.topLeft.Y && y <= b.bottomRight.Y
}

// Expand returns a box grown by size in every direction.
func (b Box) Expand(size float32) Box {
	return NewBox(b.topLeft.Sub(Point{size, size}), b.width+2*size, b.height+2*size)
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
