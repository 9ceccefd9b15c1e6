package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/tabletlab/tablet"
)

func testFrame(axis tablet.Axis) tablet.Frame {
	g := tablet.Geometry{
		Shape:          tablet.ShapeCaplet,
		Length:         0.012,
		Width:          0.004,
		TotalThickness: 0.005,
		BandThickness:  0.003,
	}
	g.CupRadius = tablet.CupRadius(g.Length, g.TotalThickness, g.BandThickness)
	snap := tablet.Snapshot{Geometry: g, Axis: axis}
	vp := tablet.DefaultViewport()
	return tablet.Frame{
		Viewport:     vp,
		Snapshot:     snap,
		Instructions: tablet.Instructions(vp.Paths(snap)),
	}
}

type element struct {
	name  string
	attrs map[string]string
}

// elements decodes doc and returns its elements in document order.
func elements(t *testing.T, doc []byte) []element {
	t.Helper()
	var out []element
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("document is not well-formed XML: %v\n%s", err, doc)
		}
		if se, ok := tok.(xml.StartElement); ok {
			attrs := make(map[string]string, len(se.Attr))
			for _, a := range se.Attr {
				attrs[a.Name.Local] = a.Value
			}
			out = append(out, element{name: se.Name.Local, attrs: attrs})
		}
	}
}

func TestWriter_Write(t *testing.T) {
	f := testFrame(tablet.AxisWidth)
	var buf bytes.Buffer
	if err := New().Write(&buf, f); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	els := elements(t, buf.Bytes())
	if els[0].name != "svg" {
		t.Fatalf("root element = %q, want svg", els[0].name)
	}
	root := els[0].attrs
	if root["viewBox"] != "0 0 48 21" || root["width"] != "960" || root["height"] != "420" {
		t.Errorf("root attributes = %v", root)
	}

	var paths []element
	groups := map[string]element{}
	for _, el := range els {
		switch el.name {
		case "path":
			paths = append(paths, el)
		case "g":
			if id := el.attrs["id"]; id != "" {
				groups[id] = el
			}
		}
	}

	// The side annotation is empty for a width dimension and is skipped.
	if len(paths) != 3 {
		t.Fatalf("document has %d paths, want 3", len(paths))
	}
	want := []tablet.DrawInstruction{f.Instructions[0], f.Instructions[1], f.Instructions[2]}
	for i, p := range paths {
		if p.attrs["d"] != want[i].D {
			t.Errorf("path %d d = %q, want %q", i, p.attrs["d"], want[i].D)
		}
		if p.attrs["class"] != want[i].Role.String() {
			t.Errorf("path %d class = %q, want %q", i, p.attrs["class"], want[i].Role)
		}
	}

	if _, ok := groups["top-view"]; !ok {
		t.Error("missing top-view group")
	}
	if side := groups["side-view"]; side.attrs["transform"] != "translate(24,0)" {
		t.Errorf("side-view transform = %q, want translate(24,0)", side.attrs["transform"])
	}

	for _, s := range []string{"Top View", "Side View", "caplet, 12.00 × 4.00 mm"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("document does not contain %q", s)
		}
	}
}

func TestWriter_WithoutLabels(t *testing.T) {
	var buf bytes.Buffer
	w := New(WithLabels(false), WithPixelsPerUnit(10), WithPixelsPerUnit(0))
	if err := w.Write(&buf, testFrame(tablet.AxisNone)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	els := elements(t, buf.Bytes())
	if vb := els[0].attrs["viewBox"]; vb != "0 0 48 18" {
		t.Errorf("viewBox = %q, want 0 0 48 18", vb)
	}
	if els[0].attrs["width"] != "480" {
		t.Errorf("width = %q, want 480", els[0].attrs["width"])
	}
	for _, el := range els {
		if el.name == "text" {
			t.Fatal("labels disabled but document contains text")
		}
	}
}

func TestWriter_Language(t *testing.T) {
	var buf bytes.Buffer
	if err := New(WithLanguage(language.German)).Write(&buf, testFrame(tablet.AxisNone)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "12,00") {
		t.Error("German captions should use a decimal comma")
	}
}

func TestWriter_NaNBandKeepsTopView(t *testing.T) {
	f := testFrame(tablet.AxisNone)
	f.Snapshot.Shape = tablet.ShapeRound
	f.Snapshot.Length = 0.01
	f.Snapshot.BandThickness = math.NaN()
	f.Instructions = tablet.Instructions(f.Viewport.Paths(f.Snapshot))

	var buf bytes.Buffer
	if err := New().Write(&buf, f); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	var paths []element
	for _, e := range elements(t, buf.Bytes()) {
		if e.name == "path" {
			paths = append(paths, e)
		}
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want only the top outline", len(paths))
	}
	want := "m 12 9 m 3.75 0 a 3.75 3.75 0 0 0 -7.5 0 a 3.75 3.75 0 0 0 7.5 0 z"
	if paths[0].attrs["d"] != want {
		t.Errorf("path d = %q, want %q", paths[0].attrs["d"], want)
	}
}

func TestWriter_SkipsMalformedPath(t *testing.T) {
	f := testFrame(tablet.AxisWidth)
	f.Instructions[0].D = "m 12 9 q 1 1 2 2"

	var buf bytes.Buffer
	if err := New().Write(&buf, f); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if strings.Contains(buf.String(), "q 1 1") {
		t.Error("malformed path data was written")
	}
	n := 0
	for _, e := range elements(t, buf.Bytes()) {
		if e.name == "path" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("got %d paths, want the two that parse", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("device full") }

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	if err := New().Write(failingWriter{}, testFrame(tablet.AxisLength)); err == nil {
		t.Error("Write() to a failing writer succeeded")
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablet.svg")
	sink := NewFileSink(path, WithLabels(false))
	if sink.Path() != path {
		t.Errorf("Path() = %q, want %q", sink.Path(), path)
	}

	r := tablet.NewRenderer(tablet.DefaultViewport(), tablet.WithSink(sink))
	f := testFrame(tablet.AxisTotalThickness)
	r.OnStateChange(f.Snapshot)
	if err := r.Err(); err != nil {
		t.Fatalf("renderer sink error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var paths int
	for _, el := range elements(t, data) {
		if el.name == "path" {
			paths++
		}
	}
	if paths != 3 {
		t.Errorf("file has %d paths, want 3", paths)
	}
}
