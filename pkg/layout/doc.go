// Package layout computes the geometry of a foldable seed packet template.
//
// # Overview
//
// The template is a single letter-size sheet (8.5 x 11 in) holding six
// outlines: a front panel, a back panel sharing the front panel's right
// edge, a half-elliptical flap above the front panel and three glue tabs
// (left, right and bottom). [Compute] returns a complete [Geometry]
// containing everything a renderer needs:
//
//   - Outlines as ordered line and arc [Segment]s, each with a [Stroke]
//   - Text anchors for the title and the date line
//   - The notes rectangle on the back panel
//   - The background image rectangle on the front panel
//
// All coordinates are in PDF points (1 in = 72 pt) with the origin at the
// top-left corner of the page and y growing downward.
//
// # Strokes
//
// Solid outlines are cut lines and dashed outlines are fold lines. The front
// panel is drawn dashed in full, so its shared edge with the back panel is a
// fold, and the flap carries a separate dashed fold segment along the front
// panel's top edge.
//
// # Dimensions
//
// [DefaultDimensions] holds the only supported template. [Dimensions.Geometry]
// is exported so the layout properties can be checked against other values.
// The Radius and FlapRadius fields are carried for rounded-corner variants
// and are not read by any computation.
package layout
