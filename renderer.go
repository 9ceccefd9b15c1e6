package tablet

import (
	"errors"
	"sync"
)

// Frame is everything a sink needs to draw one render cycle.
type Frame struct {
	Viewport     Viewport
	Snapshot     Snapshot
	Instructions []DrawInstruction
}

// Sink is a drawing surface that receives every frame a Renderer computes.
type Sink interface {
	Draw(f Frame) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(f Frame) error

// Draw calls fn(f).
func (fn SinkFunc) Draw(f Frame) error {
	return fn(f)
}

// Renderer recomputes the four diagram paths on every state change and
// forwards them to its sinks. It implements the store's observer
// interface through OnStateChange.
//
// A Renderer is safe for concurrent use; frames are computed and
// delivered one at a time. Sinks may call Paths, Frame and Err, but must
// not call OnStateChange.
type Renderer struct {
	vp    Viewport
	sinks []Sink

	cycle sync.Mutex // serializes OnStateChange

	mu    sync.Mutex // guards the fields below
	frame Frame
	paths Paths
	err   error
}

// NewRenderer creates a renderer drawing with vp.
func NewRenderer(vp Viewport, opts ...RendererOption) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		vp:    vp,
		sinks: o.sinks,
	}
}

// OnStateChange recomputes the paths for s and hands the resulting frame
// to every sink. Invalid geometry is logged and still drawn. Sink errors
// are logged and kept for Err; they never stop later sinks.
func (r *Renderer) OnStateChange(s Snapshot) {
	r.cycle.Lock()
	defer r.cycle.Unlock()

	log := Logger().With("shape", s.Shape.String(), "axis", s.Axis.String())
	if !s.Shape.Known() {
		log.Warn("tablet: unknown shape, outlines left empty")
	} else if err := s.Geometry.Validate(); err != nil {
		log.Warn("tablet: drawing invalid geometry", "err", err)
	}

	paths := r.vp.Paths(s)
	frame := Frame{
		Viewport:     r.vp,
		Snapshot:     s,
		Instructions: Instructions(paths),
	}
	r.mu.Lock()
	r.paths = paths
	r.frame = frame
	r.mu.Unlock()
	log.Debug("tablet: paths recomputed",
		"length", s.Length, "width", s.Width,
		"total", s.TotalThickness, "band", s.BandThickness, "cup", s.CupRadius)

	var errs []error
	for _, sink := range r.sinks {
		if err := sink.Draw(frame); err != nil {
			log.Error("tablet: sink failed", "err", err)
			errs = append(errs, err)
		}
	}
	r.mu.Lock()
	r.err = errors.Join(errs...)
	r.mu.Unlock()
}

// Paths returns the paths of the most recent state change.
func (r *Renderer) Paths() Paths {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paths
}

// Frame returns the most recent frame.
func (r *Renderer) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Err returns the sink errors of the most recent state change, joined,
// or nil if every sink succeeded.
func (r *Renderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Viewport returns the viewport the renderer draws with.
func (r *Renderer) Viewport() Viewport {
	return r.vp
}
