package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

const cardPreset = `
[view]
width = 100
height = 60
background = "#ffffff"

[corners]
radius = 10

[shadow]
color = "#000000"
opacity = 0.5
offset_y = 2
radius = 4

[transition]
kind = "slideUp"
`

func init() { DisableColor() }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := NewApp()
	a.SetOutput(&out)
	err := a.Execute(args...)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "viewdecor dev (commit: none)\n", out)
}

func TestRender(t *testing.T) {
	preset := writeFile(t, "card.toml", cardPreset)
	output := filepath.Join(t.TempDir(), "card.png")

	out, err := execute(t, "render", preset, "-o", output, "--scale", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Rendered")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// margin = ceil(1.5*4 + 2) = 8 on each side
	require.Equal(t, 2*(100+16), img.Bounds().Dx())
	require.Equal(t, 2*(60+16), img.Bounds().Dy())
}

func TestRenderPDF(t *testing.T) {
	preset := writeFile(t, "card.toml", cardPreset)
	output := filepath.Join(t.TempDir(), "card.pdf")

	out, err := execute(t, "render", preset, "-o", output)
	require.NoError(t, err)
	require.Contains(t, out, "Rendered")

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderErrors(t *testing.T) {
	preset := writeFile(t, "card.toml", cardPreset)

	_, err := execute(t, "render", preset, "--at", "2")
	require.Error(t, err)

	_, err = execute(t, "render")
	require.Error(t, err)

	missing := filepath.Join(t.TempDir(), "typo.toml")
	output := filepath.Join(t.TempDir(), "typo.png")
	_, err = execute(t, "render", missing, "-o", output)
	require.Error(t, err)
	require.NoFileExists(t, output)
	for _, cmd := range []string{"svg", "tree"} {
		_, err = execute(t, cmd, missing)
		require.Error(t, err, cmd)
	}

	bad := writeFile(t, "bad.toml", "[curve]\nedge = \"top\"\ndivisor = -1")
	_, err = execute(t, "render", bad, "-o", filepath.Join(t.TempDir(), "bad.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "applying curve")
}

func TestRenderMask(t *testing.T) {
	preset := writeFile(t, "card.toml", "[view]\nwidth = 40\nheight = 40\nbackground = \"#ff0000\"")
	mask := writeFile(t, "mask.svg", `<svg viewBox="0 0 10 10"><rect x="0" y="0" width="5" height="10"/></svg>`)
	output := filepath.Join(t.TempDir(), "masked.png")

	_, err := execute(t, "render", preset, "-o", output, "--mask", mask)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	_, _, _, a := img.At(10, 20).RGBA()
	require.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(30, 20).RGBA()
	require.Equal(t, uint32(0), a)
}

func TestFitMatrix(t *testing.T) {
	m := fitMatrix(viewpath.Rect{X: 0, Y: 0, W: 10, H: 10}, viewpath.Rect{X: 5, Y: 5, W: 40, H: 20})
	x, y := m.Transform(10, 10)
	require.InDelta(t, 45, x, 1e-9)
	require.InDelta(t, 25, y, 1e-9)
}

func TestSVG(t *testing.T) {
	preset := writeFile(t, "card.toml", cardPreset)

	out, err := execute(t, "svg", preset)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 60">`))
	require.Contains(t, out, `fill="#000000"`)

	out, err = execute(t, "svg", "--shadow", preset)
	require.NoError(t, err)
	require.Contains(t, out, `fill-opacity="0.5" transform="translate(0 2)"`)

	noShadow := writeFile(t, "plain.toml", "[view]\nwidth = 10\nheight = 10")
	_, err = execute(t, "svg", "--shadow", noShadow)
	require.Error(t, err)
}

func TestSVGGradientMask(t *testing.T) {
	preset := writeFile(t, "fade.toml", "[view]\nwidth = 10\nheight = 10\n[fade]\nstyle = \"bottom\"")

	out, err := execute(t, "svg", preset)
	require.NoError(t, err)
	require.Contains(t, out, "warning: the mask is not a shape")
}

func TestTree(t *testing.T) {
	preset := writeFile(t, "card.toml", cardPreset)

	out, err := execute(t, "tree", preset)
	require.NoError(t, err)
	require.Contains(t, out, "view 100x60 at (0, 0)")
	require.Contains(t, out, "cornerRadius: 10")
	require.Contains(t, out, "masksToBounds: false") // the shadow disables clipping
	require.Contains(t, out, "shadow: #000000 opacity 0.5 offset (0, 2) radius 4")
	require.NotContains(t, out, "transform:")

	// the slide starts one height below
	out, err = execute(t, "tree", "--at", "0", preset)
	require.NoError(t, err)
	require.Contains(t, out, "transform: [1 0 0 1 0 60]")
	require.Contains(t, out, "opacity: 0")
}

func TestVerboseWarnings(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&out)

	a := NewApp()
	require.NoError(t, a.decorator(cmd).ApplyBottomCurve(view.NewNode(0, 0), 4))
	require.Empty(t, out.String())

	a.verbose = true
	require.NoError(t, a.decorator(cmd).ApplyBottomCurve(view.NewNode(0, 0), 4))
	require.Contains(t, out.String(), "warning: decor: ApplyBottomCurve: view has zero sized bounds")
}
