package layout

// Version identifies the layout algorithm. Bump it whenever Compute would
// produce different coordinates so cached renders are invalidated.
const Version = "1"

// PointsPerInch converts inches to PDF points.
const PointsPerInch = 72.0

// Inches converts a length in inches to points.
func Inches(in float64) float64 { return in * PointsPerInch }

// Outline names, in draw order.
const (
	NameFront     = "front"
	NameBack      = "back"
	NameFlap      = "flap"
	NameFlapFold  = "flap-fold"
	NameLeftTab   = "left-tab"
	NameRightTab  = "right-tab"
	NameBottomTab = "bottom-tab"
)

// Content inset from the panel corners, in points.
const (
	textInsetX   = 30
	titleInsetY  = 30
	dateInsetY   = 60
	notesInsetY  = 90
	notesShrinkW = 60
	notesShrinkH = 120
)

// Dimensions is the fixed size set of the template, in points.
type Dimensions struct {
	PageWidth  float64 `json:"pageWidth" yaml:"page_width"`
	PageHeight float64 `json:"pageHeight" yaml:"page_height"`

	// X and Y locate the front panel's top-left corner.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	MainWidth  float64 `json:"mainWidth" yaml:"main_width"`
	MainHeight float64 `json:"mainHeight" yaml:"main_height"`
	TabWidth   float64 `json:"tabWidth" yaml:"tab_width"`
	TabHeight  float64 `json:"tabHeight" yaml:"tab_height"`
	FlapHeight float64 `json:"flapHeight" yaml:"flap_height"`

	// Reserved for rounded-corner variants; no computation reads them.
	Radius     float64 `json:"radius" yaml:"radius"`
	FlapRadius float64 `json:"flapRadius" yaml:"flap_radius"`
}

// DefaultDimensions returns the letter-size seed packet template.
func DefaultDimensions() Dimensions {
	return Dimensions{
		PageWidth:  Inches(8.5),
		PageHeight: Inches(11),
		X:          Inches(1),
		Y:          Inches(1.5),
		MainWidth:  Inches(3),
		MainHeight: Inches(4),
		TabWidth:   Inches(0.5),
		TabHeight:  Inches(0.5),
		FlapHeight: Inches(0.75),
		Radius:     Inches(0.5),
		FlapRadius: Inches(1.5),
	}
}

// Geometry is the complete drawable layout of one template.
type Geometry struct {
	Dims   Dimensions `json:"dimensions" yaml:"dimensions"`
	Page   Rect       `json:"page" yaml:"page"`
	Anchor Point      `json:"anchor" yaml:"anchor"`

	FrontPanel Rect `json:"frontPanel" yaml:"front_panel"`
	BackPanel  Rect `json:"backPanel" yaml:"back_panel"`

	Front     Outline `json:"front" yaml:"front"`
	Back      Outline `json:"back" yaml:"back"`
	Flap      Outline `json:"flap" yaml:"flap"`
	FlapFold  Outline `json:"flapFold" yaml:"flap_fold"`
	LeftTab   Outline `json:"leftTab" yaml:"left_tab"`
	RightTab  Outline `json:"rightTab" yaml:"right_tab"`
	BottomTab Outline `json:"bottomTab" yaml:"bottom_tab"`

	// Title and Date are baseline-left text anchors.
	Title Point `json:"title" yaml:"title"`
	Date  Point `json:"date" yaml:"date"`
	Notes Rect  `json:"notes" yaml:"notes"`
	Image Rect  `json:"image" yaml:"image"`
}

// Compute returns the geometry of the default template.
func Compute() Geometry {
	return DefaultDimensions().Geometry()
}

// Geometry lays out the template for d. It is pure and never fails.
func (d Dimensions) Geometry() Geometry {
	x, y := d.X, d.Y
	w, h := d.MainWidth, d.MainHeight
	tw, th := d.TabWidth, d.TabHeight

	g := Geometry{
		Dims:       d,
		Page:       Rect{W: d.PageWidth, H: d.PageHeight},
		Anchor:     Point{X: x, Y: y},
		FrontPanel: Rect{X: x, Y: y, W: w, H: h},
		BackPanel:  Rect{X: x + w, Y: y, W: w, H: h},
	}

	g.Front = polygon(NameFront, StrokeDashed,
		Point{x, y}, Point{x + w, y}, Point{x + w, y + h}, Point{x, y + h})

	// The back panel reuses the front panel's right edge, so it has no left side.
	g.Back = polyline(NameBack, StrokeSolid,
		Point{x + w, y}, Point{x + 2*w, y}, Point{x + 2*w, y + h}, Point{x + w, y + h})

	g.Flap = Outline{
		Name:     NameFlap,
		Stroke:   StrokeSolid,
		Segments: []Segment{Arc(Point{x + w/2, y}, w/2, d.FlapHeight, 0, 180)},
	}
	g.FlapFold = polyline(NameFlapFold, StrokeDashed, Point{x, y}, Point{x + w, y})

	g.LeftTab = polyline(NameLeftTab, StrokeSolid,
		Point{x, y}, Point{x - tw, y}, Point{x - tw, y + h}, Point{x, y + h})
	g.RightTab = polyline(NameRightTab, StrokeSolid,
		Point{x + 2*w, y}, Point{x + 2*w + tw, y}, Point{x + 2*w + tw, y + h}, Point{x + 2*w, y + h})
	g.BottomTab = polyline(NameBottomTab, StrokeSolid,
		Point{x, y + h}, Point{x, y + h + th}, Point{x + w, y + h + th}, Point{x + w, y + h})

	g.Title = Point{X: x + textInsetX, Y: y + titleInsetY}
	g.Date = Point{X: x + textInsetX, Y: y + dateInsetY}
	g.Notes = Rect{
		X: g.BackPanel.X + textInsetX,
		Y: y + notesInsetY,
		W: w - notesShrinkW,
		H: h - notesShrinkH,
	}
	g.Image = g.FrontPanel

	return g
}

// Outlines returns the six template outlines in draw order. The flap's fold
// line is reachable through FlapFold or [Geometry.Strokes].
func (g Geometry) Outlines() []Outline {
	return []Outline{g.Front, g.Back, g.Flap, g.LeftTab, g.RightTab, g.BottomTab}
}

// Strokes returns every path the renderer strokes, in draw order: the six
// outlines with the flap fold right after the flap.
func (g Geometry) Strokes() []Outline {
	return []Outline{g.Front, g.Back, g.Flap, g.FlapFold, g.LeftTab, g.RightTab, g.BottomTab}
}

// Bounds returns the bounding box of all outlines.
func (g Geometry) Bounds() Rect {
	b := g.Front.Bounds()
	for _, o := range g.Strokes()[1:] {
		b = b.Union(o.Bounds())
	}
	return b
}

// HorizontalSpan is the width of the cut template from tab edge to tab edge.
func (g Geometry) HorizontalSpan() float64 {
	return g.RightTab.Bounds().Right() - g.LeftTab.Bounds().Left()
}
