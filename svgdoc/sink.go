package svgdoc

import (
	"bytes"
	"fmt"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/atomicfile"
)

// FileSink is a tablet.Sink that rewrites an SVG file on every frame.
// The file is replaced atomically so that viewers never read a partial
// document.
type FileSink struct {
	path string
	w    *Writer
}

// NewFileSink returns a sink writing to path with a Writer built from opts.
func NewFileSink(path string, opts ...Option) *FileSink {
	return &FileSink{path: path, w: New(opts...)}
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

// Draw implements tablet.Sink.
func (s *FileSink) Draw(f tablet.Frame) error {
	var buf bytes.Buffer
	if err := s.w.Write(&buf, f); err != nil {
		return err
	}
	if err := atomicfile.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svgdoc: %w", err)
	}
	tablet.Logger().Info("svgdoc: wrote document", "path", s.path, "bytes", buf.Len())
	return nil
}
