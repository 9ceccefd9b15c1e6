package store

import "github.com/tabletlab/tablet"

// SetShape sets the tablet shape.
func SetShape(shape tablet.Shape) Action {
	return func(s *tablet.Snapshot) { s.Shape = shape }
}

// SetLength sets the tablet length in meters.
func SetLength(m float64) Action {
	return func(s *tablet.Snapshot) { s.Length = m }
}

// SetWidth sets the tablet width in meters.
func SetWidth(m float64) Action {
	return func(s *tablet.Snapshot) { s.Width = m }
}

// SetTotalThickness sets the overall thickness in meters.
func SetTotalThickness(m float64) Action {
	return func(s *tablet.Snapshot) { s.TotalThickness = m }
}

// SetBandThickness sets the band wall height in meters.
func SetBandThickness(m float64) Action {
	return func(s *tablet.Snapshot) { s.BandThickness = m }
}

// SetAxis selects the dimension line to draw.
func SetAxis(axis tablet.Axis) Action {
	return func(s *tablet.Snapshot) { s.Axis = axis }
}

// Replace swaps the whole state, as when a geometry file is reloaded.
func Replace(next tablet.Snapshot) Action {
	return func(s *tablet.Snapshot) { *s = next }
}
