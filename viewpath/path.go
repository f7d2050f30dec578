// Implements an abstract representation of
// vector paths, used as masks and shadow outlines
// by the view decorators, and consumed by painting
// drivers such as viewraster.
package viewpath

import (
	"fmt"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

var _ rasterx.Adder = (*Path)(nil) // assert interface conformance

// Path describes a sequence of basic operations.
// A nil or empty Path is a valid, degenerate path.
// Higher-level shapes may be reduced to a path.
type Path []Operation

// ToSVGPath returns a string representation of the path,
// suitable for the `d` attribute of an SVG path element.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Append adds the sub-paths of q after the ones of p.
// With the non-zero winding rule, two paths drawn in the
// same direction are merged (union), while a reversed path
// punches a hole (subtraction).
func (p *Path) Append(q Path) {
	*p = append(*p, q...)
}

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// AddTo replays the Path p on q, closing any open sub-path
// before a new one is started.
func (p Path) AddTo(q rasterx.Adder) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close if currently in path.
			q.Start(fixed.Point26_6(op))
		case LineTo:
			q.Line(fixed.Point26_6(op))
		case QuadTo:
			q.QuadBezier(op[0], op[1])
		case CubicTo:
			q.CubeBezier(op[0], op[1], op[2])
		case Close:
			q.Stop(true)
		}
	}
	q.Stop(false)
}

// Transform returns a new path, with every point mapped by `m`.
func (p Path) Transform(m rasterx.Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(m.TFixed(fixed.Point26_6(op)))
		case LineTo:
			out[i] = LineTo(m.TFixed(fixed.Point26_6(op)))
		case QuadTo:
			out[i] = QuadTo{m.TFixed(op[0]), m.TFixed(op[1])}
		case CubicTo:
			out[i] = CubicTo{m.TFixed(op[0]), m.TFixed(op[1]), m.TFixed(op[2])}
		case Close:
			out[i] = op
		}
	}
	return out
}

// segment is one drawing command, with its start point resolved
type segment struct {
	from fixed.Point26_6
	op   Operation
}

// subPath is a run of segments starting with a MoveTo
type subPath struct {
	start  fixed.Point26_6
	segs   []segment
	closed bool
}

func (p Path) subPaths() []subPath {
	var (
		out     []subPath
		current fixed.Point26_6
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			out = append(out, subPath{start: current})
			continue
		case Close:
			if len(out) != 0 {
				out[len(out)-1].closed = true
				current = out[len(out)-1].start
			}
			continue
		}
		if len(out) == 0 { // drawing without a MoveTo starts at the origin
			out = append(out, subPath{})
		}
		last := &out[len(out)-1]
		last.segs = append(last.segs, segment{from: current, op: op})
		current = endPoint(op)
	}
	return out
}

func endPoint(op Operation) fixed.Point26_6 {
	switch op := op.(type) {
	case MoveTo:
		return fixed.Point26_6(op)
	case LineTo:
		return fixed.Point26_6(op)
	case QuadTo:
		return op[1]
	case CubicTo:
		return op[2]
	}
	return fixed.Point26_6{}
}

// Reversed returns the path drawn in the opposite direction:
// each sub-path is walked backward, keeping its closed state.
func (p Path) Reversed() Path {
	var out Path
	for _, sp := range p.subPaths() {
		end := sp.start
		if n := len(sp.segs); n != 0 {
			end = endPoint(sp.segs[n-1].op)
		}
		out.Start(end)
		for i := len(sp.segs) - 1; i >= 0; i-- {
			seg := sp.segs[i]
			switch op := seg.op.(type) {
			case LineTo:
				out.Line(seg.from)
			case QuadTo:
				out.QuadBezier(op[0], seg.from)
			case CubicTo:
				out.CubeBezier(op[1], op[0], seg.from)
			}
		}
		out.Stop(sp.closed)
	}
	return out
}
