// Package caption formats the view titles and dimension captions printed
// under each canvas, with numbers localized through golang.org/x/text.
package caption

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/tabletlab/tablet"
)

// ErrLanguage is returned when a language tag cannot be parsed.
var ErrLanguage = errors.New("caption: invalid language tag")

// ParseLanguage parses a BCP 47 tag such as "en" or "de-CH". An empty
// string selects English.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %v", ErrLanguage, s, err)
	}
	return tag, nil
}

// titles holds the translated view titles. English uses the keys.
var titles = newTitles()

func newTitles() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tr := range []struct {
		tag       language.Tag
		top, side string
	}{
		{language.German, "Draufsicht", "Seitenansicht"},
		{language.French, "Vue de dessus", "Vue de côté"},
		{language.Spanish, "Vista superior", "Vista lateral"},
	} {
		b.SetString(tr.tag, "Top View", tr.top)
		b.SetString(tr.tag, "Side View", tr.side)
	}
	return b
}

// Printer formats captions for one language.
type Printer struct {
	p *message.Printer
}

// New returns a Printer for tag.
func New(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag, message.Catalog(titles))}
}

// Title returns the translated "Top View" or "Side View".
func (c *Printer) Title(v tablet.View) string {
	if v == tablet.ViewSide {
		return c.p.Sprintf("Side View")
	}
	return c.p.Sprintf("Top View")
}

// Dimensions returns the caption listing the dimensions shown in view v,
// in millimeters. Unknown shapes yield an empty top caption.
func (c *Printer) Dimensions(s tablet.Snapshot, v tablet.View) string {
	if v == tablet.ViewSide {
		return c.p.Sprintf("total %.2f mm, band %.2f mm",
			mm(s.TotalThickness), mm(s.BandThickness))
	}
	switch s.Shape {
	case tablet.ShapeRound:
		return c.p.Sprintf("round, Ø %.2f mm", mm(s.Length))
	case tablet.ShapeOval, tablet.ShapeCaplet:
		return c.p.Sprintf("%s, %.2f × %.2f mm", s.Shape.String(), mm(s.Length), mm(s.Width))
	}
	return ""
}

func mm(m float64) float64 { return m * 1000 }
