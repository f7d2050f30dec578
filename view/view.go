// Provides the render tree of a decorated view.
// A View exposes its bounds and a backing Layer, which holds
// the visual properties (corners, border, shadow, opacity, transform),
// an optional mask and an ordered list of sublayers.
// Hosts (see viewraster or viewfyne) turn the render tree into pixels;
// decorators (see decor) only mutate it.
package view

import (
	"image/color"

	"github.com/benoitkugler/viewdecor/viewpath"
)

// View is the capability a hosting UI layer provides to the decorators.
// The returned Layer is owned by the host and must stay valid
// for the lifetime of the view.
type View interface {
	// Bounds returns the rectangle of the view, in its own coordinates.
	Bounds() viewpath.Rect
	// Layer returns the mutable backing layer of the view.
	Layer() *Layer
}

// Role identifies which decorator installed a sublayer,
// so that a later call of the same decorator can replace it.
type Role uint8

const (
	RoleNone Role = iota
	RoleBackground
	RoleMask
	RoleContent
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleBackground:
		return "background"
	case RoleMask:
		return "mask"
	case RoleContent:
		return "content"
	default:
		return "<unknown Role>"
	}
}

// Sublayer is either a *ShapeLayer or a *GradientLayer.
type Sublayer interface {
	// Kind returns the role the sublayer was installed for.
	Kind() Role
	// Bounds returns the frame of the sublayer, in the coordinates
	// of its parent.
	Bounds() viewpath.Rect
}

var (
	_ Sublayer = (*ShapeLayer)(nil)
	_ Sublayer = (*GradientLayer)(nil)
)

// ShapeLayer fills a path. Used as a mask, only the covered area
// of the view stays visible.
type ShapeLayer struct {
	Frame viewpath.Rect
	Path  viewpath.Path
	// FillColor defaults to opaque black when nil.
	FillColor color.Color
	Role      Role
}

func (s *ShapeLayer) Kind() Role            { return s.Role }
func (s *ShapeLayer) Bounds() viewpath.Rect { return s.Frame }

// Shadow describes the shadow cast by a layer.
// When Path is nil, the shadow follows the layer outline.
// The zero value casts no shadow.
type Shadow struct {
	Color   color.Color
	Opacity float64
	Offset  viewpath.Point
	Radius  float64
	Path    viewpath.Path
}

// IsVisible returns true if the shadow has some effect.
func (s Shadow) IsVisible() bool {
	if s.Opacity <= 0 || s.Color == nil {
		return false
	}
	_, _, _, a := s.Color.RGBA()
	return a != 0
}

// Layer is the backing store of a view.
type Layer struct {
	BackgroundColor color.Color
	CornerRadius    float64
	MasksToBounds   bool
	BorderColor     color.Color
	BorderWidth     float64
	Shadow          Shadow
	Opacity         float64
	Transform       Transform

	// Mask, when not nil, clips the layer and its sublayers.
	Mask Sublayer
	// Sublayers are composited in order, the first one being the bottom-most.
	Sublayers []Sublayer
}

// NewLayer returns a fully opaque layer, with an identity transform.
func NewLayer() Layer {
	return Layer{Opacity: 1, Transform: Identity}
}

// InsertSublayer inserts s at position `index`, clamped to
// the valid range.
func (l *Layer) InsertSublayer(s Sublayer, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(l.Sublayers) {
		index = len(l.Sublayers)
	}
	l.Sublayers = append(l.Sublayers, nil)
	copy(l.Sublayers[index+1:], l.Sublayers[index:])
	l.Sublayers[index] = s
}

// AddSublayer adds s on top of the existing sublayers.
func (l *Layer) AddSublayer(s Sublayer) {
	l.Sublayers = append(l.Sublayers, s)
}

// RemoveSublayers removes the sublayers installed with `role`, and
// returns how many were removed.
func (l *Layer) RemoveSublayers(role Role) int {
	kept := l.Sublayers[:0]
	for _, s := range l.Sublayers {
		if s.Kind() != role {
			kept = append(kept, s)
		}
	}
	removed := len(l.Sublayers) - len(kept)
	for i := len(kept); i < len(l.Sublayers); i++ {
		l.Sublayers[i] = nil // release the references
	}
	l.Sublayers = kept
	return removed
}

// Node is an in-memory view, used by batch renderers and tests.
type Node struct {
	bounds viewpath.Rect
	layer  Layer
}

var _ View = (*Node)(nil) // assert interface conformance

// NewNode returns a view of the given size, located at the origin.
func NewNode(width, height float64) *Node {
	return &Node{bounds: viewpath.Rect{W: width, H: height}, layer: NewLayer()}
}

func (n *Node) Bounds() viewpath.Rect { return n.bounds }

// SetBounds updates the bounds, as a layout pass would do.
// Installed masks are not recomputed.
func (n *Node) SetBounds(r viewpath.Rect) { n.bounds = r }

func (n *Node) Layer() *Layer { return &n.layer }
