package layout

import (
	"fmt"
	"math"
)

// Point is a position in points, origin top-left, y down.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// ContainsStrict reports whether o lies strictly inside r, touching no edge.
func (r Rect) ContainsStrict(o Rect) bool {
	return o.Left() > r.Left() && o.Right() < r.Right() &&
		o.Top() > r.Top() && o.Bottom() < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left(), o.Left())
	top := math.Min(r.Top(), o.Top())
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// SegmentKind distinguishes straight lines from elliptical arcs.
type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentArc
)

func (k SegmentKind) String() string {
	if k == SegmentArc {
		return "arc"
	}
	return "line"
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k SegmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Segment is one piece of an outline path.
//
// For arcs, Center, RX and RY describe the ellipse and StartDeg/EndDeg the
// sweep in degrees, measured counter-clockwise from the 3 o'clock position
// as seen on the page. From and To are always the resolved end points.
type Segment struct {
	Kind     SegmentKind `json:"kind" yaml:"kind"`
	From     Point       `json:"from" yaml:"from"`
	To       Point       `json:"to" yaml:"to"`
	Center   Point       `json:"center,omitzero" yaml:"center,omitempty"`
	RX       float64     `json:"rx,omitempty" yaml:"rx,omitempty"`
	RY       float64     `json:"ry,omitempty" yaml:"ry,omitempty"`
	StartDeg float64     `json:"startDeg,omitempty" yaml:"start_deg,omitempty"`
	EndDeg   float64     `json:"endDeg,omitempty" yaml:"end_deg,omitempty"`
}

// Line returns a straight segment.
func Line(from, to Point) Segment {
	return Segment{Kind: SegmentLine, From: from, To: to}
}

// Arc returns an elliptical arc segment with resolved end points.
func Arc(center Point, rx, ry, startDeg, endDeg float64) Segment {
	s := Segment{
		Kind:     SegmentArc,
		Center:   center,
		RX:       rx,
		RY:       ry,
		StartDeg: startDeg,
		EndDeg:   endDeg,
	}
	s.From = s.PointAt(startDeg)
	s.To = s.PointAt(endDeg)
	return s
}

// PointAt returns the point of an arc's ellipse at angle deg. Angles grow
// counter-clockwise on the page, so 90 is above the center.
func (s Segment) PointAt(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: round(s.Center.X + s.RX*math.Cos(rad)),
		Y: round(s.Center.Y - s.RY*math.Sin(rad)),
	}
}

// Bounds returns the bounding box of the segment. Arcs are bounded by
// sampling their extreme angles within the sweep.
func (s Segment) Bounds() Rect {
	pts := []Point{s.From, s.To}
	if s.Kind == SegmentArc {
		lo, hi := math.Min(s.StartDeg, s.EndDeg), math.Max(s.StartDeg, s.EndDeg)
		for deg := math.Ceil(lo/90) * 90; deg <= hi; deg += 90 {
			pts = append(pts, s.PointAt(deg))
		}
	}
	return boundsOf(pts)
}

// Stroke is the line style of an outline.
type Stroke int

const (
	// StrokeSolid marks a cut line.
	StrokeSolid Stroke = iota
	// StrokeDashed marks a fold line.
	StrokeDashed
)

func (s Stroke) String() string {
	if s == StrokeDashed {
		return "dashed"
	}
	return "solid"
}

// MarshalText encodes the stroke by name for JSON and YAML output.
func (s Stroke) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Outline is a named, stroked path made of connected segments.
type Outline struct {
	Name     string    `json:"name" yaml:"name"`
	Stroke   Stroke    `json:"stroke" yaml:"stroke"`
	Closed   bool      `json:"closed" yaml:"closed"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// Start returns the first point of the path.
func (o Outline) Start() Point {
	if len(o.Segments) == 0 {
		return Point{}
	}
	return o.Segments[0].From
}

// Bounds returns the bounding box of all segments.
func (o Outline) Bounds() Rect {
	var b Rect
	for i, s := range o.Segments {
		if i == 0 {
			b = s.Bounds()
			continue
		}
		b = b.Union(s.Bounds())
	}
	return b
}

// polyline builds an open path through pts.
func polyline(name string, stroke Stroke, pts ...Point) Outline {
	o := Outline{Name: name, Stroke: stroke}
	for i := 1; i < len(pts); i++ {
		o.Segments = append(o.Segments, Line(pts[i-1], pts[i]))
	}
	return o
}

// polygon builds a closed path through pts, returning to the first point.
func polygon(name string, stroke Stroke, pts ...Point) Outline {
	o := polyline(name, stroke, append(pts, pts[0])...)
	o.Closed = true
	return o
}

func boundsOf(pts []Point) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// round trims floating point noise from trigonometric results.
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
