package preview

import (
	"bytes"
	"fmt"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/atomicfile"
)

// FileSink is a tablet.Sink that rewrites a PNG file on every frame.
type FileSink struct {
	path string
	r    *Renderer
}

// NewFileSink returns a sink writing frames rasterized by r to path.
func NewFileSink(path string, r *Renderer) *FileSink {
	return &FileSink{path: path, r: r}
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

// Draw implements tablet.Sink.
func (s *FileSink) Draw(f tablet.Frame) error {
	var buf bytes.Buffer
	if err := s.r.Encode(&buf, f); err != nil {
		return err
	}
	if err := atomicfile.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	tablet.Logger().Info("preview: wrote image", "path", s.path, "bytes", buf.Len())
	return nil
}
