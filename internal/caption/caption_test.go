package caption

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/tabletlab/tablet"
)

func snapshot(shape tablet.Shape) tablet.Snapshot {
	return tablet.Snapshot{Geometry: tablet.Geometry{
		Shape:          shape,
		Length:         0.012,
		Width:          0.004,
		TotalThickness: 0.005,
		BandThickness:  0.003,
	}}
}

func TestPrinter_Dimensions(t *testing.T) {
	p := New(language.English)
	tests := []struct {
		name  string
		shape tablet.Shape
		view  tablet.View
		want  string
	}{
		{"round top", tablet.ShapeRound, tablet.ViewTop, "round, Ø 12.00 mm"},
		{"caplet top", tablet.ShapeCaplet, tablet.ViewTop, "caplet, 12.00 × 4.00 mm"},
		{"oval top", tablet.ShapeOval, tablet.ViewTop, "oval, 12.00 × 4.00 mm"},
		{"unknown top", tablet.ShapeUnknown, tablet.ViewTop, ""},
		{"side", tablet.ShapeCaplet, tablet.ViewSide, "total 5.00 mm, band 3.00 mm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Dimensions(snapshot(tt.shape), tt.view); got != tt.want {
				t.Errorf("Dimensions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter_LocalizedDecimals(t *testing.T) {
	p := New(language.German)
	got := p.Dimensions(snapshot(tablet.ShapeCaplet), tablet.ViewTop)
	if !strings.Contains(got, "12,00") {
		t.Errorf("German caption %q does not use a decimal comma", got)
	}
}

func TestPrinter_Title(t *testing.T) {
	tests := []struct {
		tag       language.Tag
		top, side string
	}{
		{language.English, "Top View", "Side View"},
		{language.German, "Draufsicht", "Seitenansicht"},
		{language.MustParse("de-CH"), "Draufsicht", "Seitenansicht"},
		{language.French, "Vue de dessus", "Vue de côté"},
		{language.Japanese, "Top View", "Side View"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			p := New(tt.tag)
			if got := p.Title(tablet.ViewTop); got != tt.top {
				t.Errorf("Title(top) = %q, want %q", got, tt.top)
			}
			if got := p.Title(tablet.ViewSide); got != tt.side {
				t.Errorf("Title(side) = %q, want %q", got, tt.side)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tag, err := ParseLanguage("")
	if err != nil || tag != language.English {
		t.Errorf("ParseLanguage(\"\") = %v, %v", tag, err)
	}
	tag, err = ParseLanguage("de")
	if err != nil || tag != language.German {
		t.Errorf("ParseLanguage(de) = %v, %v", tag, err)
	}
	if _, err := ParseLanguage("not a tag!"); !errors.Is(err, ErrLanguage) {
		t.Errorf("ParseLanguage(invalid) error = %v, want ErrLanguage", err)
	}
}
