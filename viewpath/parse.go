package viewpath

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
	errNoMove         = errors.New("path data must start with a move command")
	errNoShape        = errors.New("no shape found in svg document")
)

// pathCursor is used while parsing path data
type pathCursor struct {
	path           Path
	points         []float64
	placeX, placeY float64 // current point
	startX, startY float64 // start of the current sub-path
	hasMove        bool
}

// ParseSVGPath compiles the `d` attribute of an SVG path element.
// The commands M, L, H, V, C, Q, Z are supported, in absolute
// and relative forms.
func ParseSVGPath(d string) (Path, error) {
	var c pathCursor
	if err := c.compile(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

func (c *pathCursor) compile(d string) error {
	i := 0
	for i < len(d) {
		r := d[i]
		if !isCommand(r) {
			if unicode.IsSpace(rune(r)) || r == ',' {
				i++
				continue
			}
			return fmt.Errorf("at offset %d: %w %q", i, errCommandUnknown, r)
		}
		j := i + 1
		for j < len(d) && !isCommand(d[j]) {
			j++
		}
		if err := c.readPoints(d[i+1 : j]); err != nil {
			return fmt.Errorf("at offset %d: %w", i, err)
		}
		if err := c.addSeg(r); err != nil {
			return fmt.Errorf("at offset %d: %w", i, err)
		}
		i = j
	}
	return nil
}

func isCommand(r byte) bool {
	switch unicode.ToUpper(rune(r)) {
	case 'M', 'L', 'H', 'V', 'C', 'Q', 'Z':
		return true
	}
	return false
}

// readPoints splits the arguments of a command. Numbers may be
// separated by spaces, commas or a sign.
func (c *pathCursor) readPoints(s string) error {
	c.points = c.points[:0]
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	for _, field := range fields {
		for _, num := range splitOnSign(field) {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return err
			}
			c.points = append(c.points, f)
		}
	}
	return nil
}

// splitOnSign separates "10-5" into "10" and "-5",
// keeping exponents such as "1e-5" intact
func splitOnSign(s string) []string {
	var out []string
	start := 0
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] != 'e' && s[i-1] != 'E' {
			out = append(out, s[start:i])
			start = i
		}
	}
	return append(out, s[start:])
}

func (c *pathCursor) moveTo(x, y float64) {
	c.placeX, c.placeY = x, y
	c.startX, c.startY = x, y
	c.path.Start(toFixedP(x, y))
}

func (c *pathCursor) addSeg(key byte) error {
	rel := unicode.IsLower(rune(key))
	upper := byte(unicode.ToUpper(rune(key)))
	if upper != 'M' && !c.hasMove {
		return errNoMove
	}
	l := len(c.points)
	offset := func(x, y float64) (float64, float64) {
		if rel {
			return x + c.placeX, y + c.placeY
		}
		return x, y
	}
	switch upper {
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
	case 'M':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		c.hasMove = true
		x, y := offset(c.points[0], c.points[1])
		c.moveTo(x, y)
		// extra pairs are implicit line commands
		for i := 2; i < l-1; i += 2 {
			x, y := offset(c.points[i], c.points[i+1])
			c.path.Line(toFixedP(x, y))
			c.placeX, c.placeY = x, y
		}
	case 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			x, y := offset(c.points[i], c.points[i+1])
			c.path.Line(toFixedP(x, y))
			c.placeX, c.placeY = x, y
		}
	case 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.path.Line(toFixedP(x, c.placeY))
			c.placeX = x
		}
	case 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.path.Line(toFixedP(c.placeX, y))
			c.placeY = y
		}
	case 'Q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			x1, y1 := offset(c.points[i], c.points[i+1])
			x, y := offset(c.points[i+2], c.points[i+3])
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(x, y))
			c.placeX, c.placeY = x, y
		}
	case 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-5; i += 6 {
			x1, y1 := offset(c.points[i], c.points[i+1])
			x2, y2 := offset(c.points[i+2], c.points[i+3])
			x, y := offset(c.points[i+4], c.points[i+5])
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x, y))
			c.placeX, c.placeY = x, y
		}
	default:
		return errCommandUnknown
	}
	return nil
}

// ReadMaskSVG reads an SVG document and merges its shapes
// (path, rect, circle and ellipse elements) into one path,
// suitable to be used as a view mask.
// Styles and transforms are ignored. The viewBox of the document is
// returned, or the extent of the shapes when it is missing.
func ReadMaskSVG(stream io.Reader) (Path, Rect, error) {
	var (
		out     Path
		viewBox Rect
	)
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, Rect{}, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		sf, ok := shapeFuncs[se.Name.Local]
		if !ok {
			continue
		}
		if se.Name.Local == "svg" {
			viewBox, err = readViewBox(se.Attr)
			if err != nil {
				return nil, Rect{}, err
			}
			continue
		}
		shape, err := sf(se.Attr)
		if err != nil {
			return nil, Rect{}, fmt.Errorf("invalid %s element: %w", se.Name.Local, err)
		}
		out.Append(shape)
	}
	if len(out) == 0 {
		return nil, Rect{}, errNoShape
	}
	if viewBox.IsEmpty() {
		viewBox = out.Bounds()
	}
	return out, viewBox, nil
}

type shapeFunc func(attrs []xml.Attr) (Path, error)

var shapeFuncs = map[string]shapeFunc{
	"svg":     nil, // handled separately
	"path":    pathF,
	"rect":    rectF,
	"circle":  ellipseF,
	"ellipse": ellipseF, // ellipseF handles circle also
}

func readFloatAttrs(attrs []xml.Attr, dst map[string]*float64) error {
	for _, attr := range attrs {
		ptr, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(attr.Value), "px"), 64)
		if err != nil {
			return err
		}
		*ptr = f
	}
	return nil
}

func readViewBox(attrs []xml.Attr) (Rect, error) {
	var width, height float64
	for _, attr := range attrs {
		if attr.Name.Local != "viewBox" {
			continue
		}
		var c pathCursor
		if err := c.readPoints(attr.Value); err != nil {
			return Rect{}, err
		}
		if len(c.points) != 4 {
			return Rect{}, errParamMismatch
		}
		return Rect{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}, nil
	}
	err := readFloatAttrs(attrs, map[string]*float64{"width": &width, "height": &height})
	return Rect{W: width, H: height}, err
}

func pathF(attrs []xml.Attr) (Path, error) {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			return ParseSVGPath(attr.Value)
		}
	}
	return nil, nil
}

func rectF(attrs []xml.Attr) (Path, error) {
	var r Rect
	var rx, ry float64
	err := readFloatAttrs(attrs, map[string]*float64{
		"x": &r.X, "y": &r.Y, "width": &r.W, "height": &r.H, "rx": &rx, "ry": &ry,
	})
	if err != nil {
		return nil, err
	}
	if rx == 0 {
		rx = ry
	}
	return RoundedRectPath(r, AllCorners, rx), nil
}

func ellipseF(attrs []xml.Attr) (Path, error) {
	var cx, cy, r, rx, ry float64
	err := readFloatAttrs(attrs, map[string]*float64{
		"cx": &cx, "cy": &cy, "r": &r, "rx": &rx, "ry": &ry,
	})
	if err != nil {
		return nil, err
	}
	if r != 0 {
		rx, ry = r, r
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil, nil
	}
	return OvalPath(Rect{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry}), nil
}
