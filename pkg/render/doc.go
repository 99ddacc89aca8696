// Package render draws a seed packet template into a single-page PDF.
//
// # Drawing Order
//
// [Render] walks a [layout.Geometry] in a fixed order:
//
//  1. The optional background image, stretched over the front panel
//  2. Every stroke from [layout.Geometry.Strokes] (solid cut lines, dashed folds)
//  3. The title, the date line and, if present, the clipped notes block
//
// Later layers paint over earlier ones, so outlines and text always sit on
// top of the image.
//
// # Failure Handling
//
// A background image that is missing, unreadable or undecodable is logged,
// reported through [observability.RenderHooks.OnImageSkipped] and left out;
// the packet still renders. Only a failure to serialize the document is
// returned, with code SERIALIZE_FAILED.
//
// # Fonts
//
// Text is set in the Go fonts (regular and bold), embedded as subsetted UTF-8
// TrueType fonts, so Latin, Greek and Cyrillic names print as typed. Runes
// the faces have no glyph for, such as emoji or CJK, are replaced with U+FFFD
// and logged.
package render
