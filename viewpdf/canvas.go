// Implements a vector PDF backend for decorated views,
// by writing content streams with benoitkugler/pdf.
//
// PDF has no blur nor soft masks in this backend: shadows are
// approximated by stacked outlines, and gradients (as sublayers or
// as masks) are drawn as thin bands of flat color.
package viewpdf

import (
	"image/color"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas receives the drawing commands of a view.
// The path methods build the current path, which is consumed
// by the next Fill, Stroke or Clip.
type Canvas interface {
	rasterx.Adder

	// Save pushes the graphic state (transform and clip).
	Save()
	// Restore pops the graphic state pushed by the matching Save.
	Restore()
	// Concat applies `m` before the current transform.
	Concat(m rasterx.Matrix2D)

	// Fill fills the current path with the non-zero winding rule.
	// The alpha of `c` is multiplied by `opacity`.
	Fill(c color.Color, opacity float64)
	// Stroke draws the outline of the current path, with round joins.
	Stroke(c color.Color, opacity, width float64)
	// Clip intersects the clipping area with the current path.
	Clip()
}

// assert interface conformance
var _ Canvas = (*pdfCanvas)(nil)

// pdfCanvas writes to a content stream
type pdfCanvas struct {
	ap *contentstream.Appearance

	start, current fixed.Point26_6

	// cache the opacity states
	fillStates   map[float64]*model.GraphicState
	strokeStates map[float64]*model.GraphicState
}

// NewCanvas returns a canvas writing its operations to `ap`.
func NewCanvas(ap *contentstream.Appearance) Canvas {
	return &pdfCanvas{
		ap:           ap,
		fillStates:   make(map[float64]*model.GraphicState),
		strokeStates: make(map[float64]*model.GraphicState),
	}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pdfCanvas) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.ap.Ops(contentstream.OpMoveTo{X: x, Y: y})
	p.start, p.current = a, a
}

func (p *pdfCanvas) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.ap.Ops(contentstream.OpLineTo{X: x, Y: y})
	p.current = b
}

// QuadBezier is elevated to a cubic curve, which PDF supports.
func (p *pdfCanvas) QuadBezier(b, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.current)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	p.ap.Ops(contentstream.OpCubicTo{
		X1: x0 + 2./3*(bx-x0), Y1: y0 + 2./3*(by-y0),
		X2: x + 2./3*(bx-x), Y2: y + 2./3*(by-y),
		X3: x, Y3: y,
	})
	p.current = c
}

func (p *pdfCanvas) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.ap.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
	p.current = d
}

func (p *pdfCanvas) Stop(closeLoop bool) {
	if closeLoop {
		p.ap.Ops(contentstream.OpClosePath{})
		p.current = p.start
	}
}

func (p *pdfCanvas) Save()    { p.ap.Ops(contentstream.OpSave{}) }
func (p *pdfCanvas) Restore() { p.ap.Ops(contentstream.OpRestore{}) }

func (p *pdfCanvas) Concat(m rasterx.Matrix2D) {
	p.ap.Ops(contentstream.OpConcat{Matrix: model.Matrix{m.A, m.B, m.C, m.D, m.E, m.F}})
}

// opaque returns the color without its alpha, and the alpha
// multiplied by `opacity`
func opaque(c color.Color, opacity float64) (color.NRGBA, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	opacity *= float64(n.A) / 255
	n.A = 0xff
	return n, opacity
}

func (p *pdfCanvas) Fill(c color.Color, opacity float64) {
	n, opacity := opaque(c, opacity)
	p.ap.SetColorFill(n)
	gs, ok := p.fillStates[opacity]
	if !ok {
		gs = &model.GraphicState{Ca: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		p.fillStates[opacity] = gs
	}
	name := p.ap.AddExtGState(gs)
	p.ap.Ops(contentstream.OpSetExtGState{Dict: name}, contentstream.OpFill{})
}

func (p *pdfCanvas) Stroke(c color.Color, opacity, width float64) {
	n, opacity := opaque(c, opacity)
	p.ap.SetColorStroke(n)
	gs, ok := p.strokeStates[opacity]
	if !ok {
		gs = &model.GraphicState{CA: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		p.strokeStates[opacity] = gs
	}
	name := p.ap.AddExtGState(gs)
	p.ap.Ops(
		contentstream.OpSetExtGState{Dict: name},
		contentstream.OpSetLineWidth{W: width},
		contentstream.OpSetLineCap{Style: 0},
		contentstream.OpSetLineJoin{Style: 1},
		contentstream.OpStroke{},
	)
}

// Clip uses the `W n` sequence: the path is not painted.
func (p *pdfCanvas) Clip() {
	p.ap.Ops(contentstream.OpClip{}, contentstream.OpEndPath{})
}
