package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultDimensions(t *testing.T) {
	d := DefaultDimensions()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"page width", d.PageWidth, 612},
		{"page height", d.PageHeight, 792},
		{"x", d.X, 72},
		{"y", d.Y, 108},
		{"main width", d.MainWidth, 216},
		{"main height", d.MainHeight, 288},
		{"tab width", d.TabWidth, 36},
		{"tab height", d.TabHeight, 36},
		{"flap height", d.FlapHeight, 54},
		{"radius", d.Radius, 36},
		{"flap radius", d.FlapRadius, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, b := Compute(), Compute()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Compute() not deterministic (-first +second):\n%s", diff)
	}
}

func TestComputeOutlinePaths(t *testing.T) {
	g := Compute()

	tests := []struct {
		name    string
		outline Outline
		stroke  Stroke
		closed  bool
		points  []Point
	}{
		{
			name:    "front",
			outline: g.Front,
			stroke:  StrokeDashed,
			closed:  true,
			points:  []Point{{72, 108}, {288, 108}, {288, 396}, {72, 396}, {72, 108}},
		},
		{
			name:    "back",
			outline: g.Back,
			stroke:  StrokeSolid,
			points:  []Point{{288, 108}, {504, 108}, {504, 396}, {288, 396}},
		},
		{
			name:    "flap fold",
			outline: g.FlapFold,
			stroke:  StrokeDashed,
			points:  []Point{{72, 108}, {288, 108}},
		},
		{
			name:    "left tab",
			outline: g.LeftTab,
			stroke:  StrokeSolid,
			points:  []Point{{72, 108}, {36, 108}, {36, 396}, {72, 396}},
		},
		{
			name:    "right tab",
			outline: g.RightTab,
			stroke:  StrokeSolid,
			points:  []Point{{504, 108}, {540, 108}, {540, 396}, {504, 396}},
		},
		{
			name:    "bottom tab",
			outline: g.BottomTab,
			stroke:  StrokeSolid,
			points:  []Point{{72, 396}, {72, 432}, {288, 432}, {288, 396}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.outline.Stroke != tt.stroke {
				t.Errorf("Stroke = %v, want %v", tt.outline.Stroke, tt.stroke)
			}
			if tt.outline.Closed != tt.closed {
				t.Errorf("Closed = %v, want %v", tt.outline.Closed, tt.closed)
			}
			if diff := cmp.Diff(tt.points, pathPoints(tt.outline)); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeFlapArc(t *testing.T) {
	g := Compute()
	if len(g.Flap.Segments) != 1 {
		t.Fatalf("flap segments = %d, want 1", len(g.Flap.Segments))
	}
	arc := g.Flap.Segments[0]
	want := Segment{
		Kind:     SegmentArc,
		From:     Point{288, 108},
		To:       Point{72, 108},
		Center:   Point{180, 108},
		RX:       108,
		RY:       54,
		StartDeg: 0,
		EndDeg:   180,
	}
	if diff := cmp.Diff(want, arc); diff != "" {
		t.Errorf("flap arc mismatch (-want +got):\n%s", diff)
	}

	// The flap bulges upward from the front panel's top edge.
	if top := arc.PointAt(90); top != (Point{180, 54}) {
		t.Errorf("flap apex = %v, want {180 54}", top)
	}
	if g.Flap.Stroke != StrokeSolid {
		t.Errorf("flap stroke = %v, want solid", g.Flap.Stroke)
	}
}

func TestComputeContentPlacement(t *testing.T) {
	g := Compute()

	if g.Title != (Point{102, 138}) {
		t.Errorf("Title = %v, want {102 138}", g.Title)
	}
	if g.Date != (Point{102, 168}) {
		t.Errorf("Date = %v, want {102 168}", g.Date)
	}
	if want := (Rect{X: 318, Y: 198, W: 156, H: 168}); g.Notes != want {
		t.Errorf("Notes = %v, want %v", g.Notes, want)
	}
	if g.Image != g.FrontPanel {
		t.Errorf("Image = %v, want front panel %v", g.Image, g.FrontPanel)
	}
}

func TestGeometryProperties(t *testing.T) {
	dims := []struct {
		name string
		d    Dimensions
	}{
		{"default", DefaultDimensions()},
		{"shifted anchor", func() Dimensions {
			d := DefaultDimensions()
			d.X, d.Y = 90, 40
			return d
		}()},
		{"wide tabs", func() Dimensions {
			d := DefaultDimensions()
			d.TabWidth, d.TabHeight = 54, 72
			return d
		}()},
	}

	for _, tt := range dims {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.d.Geometry()

			if got, want := g.BackPanel.Left(), g.FrontPanel.Left()+tt.d.MainWidth; got != want {
				t.Errorf("back panel left = %v, want %v", got, want)
			}
			if got, want := g.Back.Start().X, g.Front.Bounds().Right(); got != want {
				t.Errorf("back outline starts at x=%v, want front right edge %v", got, want)
			}
			if got, want := g.HorizontalSpan(), 2*tt.d.TabWidth+2*tt.d.MainWidth; got != want {
				t.Errorf("horizontal span = %v, want %v", got, want)
			}
			if !g.BackPanel.ContainsStrict(g.Notes) {
				t.Errorf("notes %v not strictly inside back panel %v", g.Notes, g.BackPanel)
			}
			if g.Image != g.FrontPanel {
				t.Errorf("image rect %v != front panel %v", g.Image, g.FrontPanel)
			}
		})
	}
}

func TestReservedRadiiDoNotAffectGeometry(t *testing.T) {
	d := DefaultDimensions()
	d.Radius, d.FlapRadius = 0, 999
	got := d.Geometry()
	want := Compute()

	// Only the echoed dimensions may differ.
	got.Dims, want.Dims = Dimensions{}, Dimensions{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("radius changed geometry (-want +got):\n%s", diff)
	}
}

func TestOutlinesAndStrokes(t *testing.T) {
	g := Compute()

	var names []string
	for _, o := range g.Outlines() {
		names = append(names, o.Name)
	}
	wantOutlines := []string{NameFront, NameBack, NameFlap, NameLeftTab, NameRightTab, NameBottomTab}
	if diff := cmp.Diff(wantOutlines, names); diff != "" {
		t.Errorf("Outlines() order mismatch (-want +got):\n%s", diff)
	}

	names = nil
	for _, o := range g.Strokes() {
		names = append(names, o.Name)
	}
	wantStrokes := []string{NameFront, NameBack, NameFlap, NameFlapFold, NameLeftTab, NameRightTab, NameBottomTab}
	if diff := cmp.Diff(wantStrokes, names); diff != "" {
		t.Errorf("Strokes() order mismatch (-want +got):\n%s", diff)
	}
}

func TestGeometryBounds(t *testing.T) {
	g := Compute()
	want := Rect{X: 36, Y: 54, W: 504, H: 378}
	if got := g.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if !g.Page.ContainsStrict(g.Bounds()) {
		t.Errorf("template %v does not fit on page %v", g.Bounds(), g.Page)
	}
}

func pathPoints(o Outline) []Point {
	if len(o.Segments) == 0 {
		return nil
	}
	pts := []Point{o.Segments[0].From}
	for _, s := range o.Segments {
		pts = append(pts, s.To)
	}
	return pts
}
