// Package tablet draws schematic diagrams of pharmaceutical tablets.
//
// # Overview
//
// Given a tablet's shape and dimensions, tablet computes SVG path data for
// two views: the outline seen from above and the edge profile seen from the
// side. A single dimension line can be added to either view to indicate the
// width, length, total thickness, band thickness or cup depth.
//
// # Quick Start
//
//	import "github.com/tabletlab/tablet"
//
//	vp := tablet.DefaultViewport()
//	top := vp.TopOutline(tablet.ShapeCaplet, 0.004, 0.012)
//	fmt.Println(top) // m 12 9 m 3 1.5 l -6 0 a 1.5 1.5 0 0 1 0 -3 ...
//
// # Coordinate System
//
// Dimensions are given in meters. A Viewport converts them to canvas units
// with a single scale factor, (Height - 2*Padding) / MaxLength, shared by
// both views so that they stay dimensionally consistent. The default canvas
// is 24×18 units, fits tablets up to 20 mm long and has its origin at the
// top-left corner with y increasing down.
//
// # Rendering
//
// Path builders are pure functions. A Renderer ties them to a state store:
// on every OnStateChange it recomputes the four paths, turns them into
// DrawInstructions and passes a Frame to each Sink. The svgdoc package
// writes frames as SVG documents and the preview package rasterizes them to
// PNG.
//
// # Invalid input
//
// Unknown shapes draw empty outlines and unknown axes draw no dimension
// line. Dimensions are not validated by the builders: zero, negative or NaN
// values produce degenerate paths rather than errors. Geometry.Validate is
// available to callers that want to reject such input.
package tablet
