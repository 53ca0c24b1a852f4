package ashby

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// RenderContext carries the presentation presets. It is built once by
// Presets and passed explicitly to every renderer, so two figures with
// different styles can coexist in one process; there is no global style
// state.
type RenderContext struct {
	FigureType   string       // "publication" or "presentation"
	FontVariant  font.Variant // Serif for print, Sans for slides
	FontSize     vg.Length
	MarkerRadius vg.Length
	// Interactive selects the windowed viewer instead of file output.
	// An explicit flag: the rendering path never sniffs the environment.
	Interactive bool
}

// Presets returns the render context for a figure type. Options are
// "publication" (serif, 10pt) or "presentation" (sans-serif, 18pt),
// case-insensitive; anything else is an invalid-argument error.
func Presets(figureType string) (RenderContext, error) {
	switch strings.ToLower(figureType) {
	case "publication":
		return RenderContext{
			FigureType:   "publication",
			FontVariant:  font.Variant("Serif"),
			FontSize:     vg.Points(10),
			MarkerRadius: vg.Points(2.5),
		}, nil
	case "presentation":
		return RenderContext{
			FigureType:   "presentation",
			FontVariant:  font.Variant("Sans"),
			FontSize:     vg.Points(18),
			MarkerRadius: vg.Points(4),
		}, nil
	}
	return RenderContext{}, fmt.Errorf("invalid figure type %q: options are publication or presentation", figureType)
}

// Apply styles one set of axes with the context's font family and sizes.
func (ctx RenderContext) Apply(p *plot.Plot) {
	for _, st := range []*font.Font{
		&p.Title.TextStyle.Font,
		&p.X.Label.TextStyle.Font,
		&p.Y.Label.TextStyle.Font,
		&p.X.Tick.Label.Font,
		&p.Y.Tick.Label.Font,
		&p.Legend.TextStyle.Font,
	} {
		st.Variant = ctx.FontVariant
		st.Size = ctx.FontSize
	}
	// Tick labels a step smaller than axis labels.
	p.X.Tick.Label.Font.Size = ctx.FontSize * 0.8
	p.Y.Tick.Label.Font.Size = ctx.FontSize * 0.8
}
