// Package svgpath models SVG path data as a list of commands.
//
// A Path records move, line, elliptical-arc and close commands in the
// absolute or relative form they were issued in, and String renders them
// back as the text of a "d" attribute:
//
//	p := svgpath.Build().
//		MoveTo(12, 9).
//		MoveBy(3, 0).
//		ArcBy(3, 3, false, false, -6, 0).
//		ArcBy(3, 3, false, false, 6, 0).
//		Close().
//		Path()
//	fmt.Println(p) // M 12 9 m 3 0 a 3 3 0 0 0 -6 0 a 3 3 0 0 0 6 0 z
//
// Beyond formatting, a Path can report its exact bounding box (Bounds),
// be rescaled (Transform) and be replayed onto any Drawer, such as a
// *gg.Context, with arcs converted to cubic Bezier curves (Replay).
// Parse reads the same command subset back.
package svgpath
