package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/handiism/playlist-lab/internal/model"
	"github.com/handiism/playlist-lab/internal/ratingtree"
)

// Base canvas geometry. Snapshots are drawn at this size and scaled.
const (
	BaseWidth  = 600
	BaseHeight = 300

	nodeRadiusX = 25
	nodeRadiusY = 15

	listStartX = 50
	listY      = 100
	listStep   = 100

	treeY         = 200
	treeLevelStep = 50
	treeOffset    = 100
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	nodeColor       = color.RGBA{74, 144, 226, 255}
	currentColor    = color.RGBA{226, 120, 74, 255}
	edgeColor       = color.RGBA{0, 0, 0, 255}
	labelColor      = color.RGBA{255, 255, 255, 255}
)

// SnapshotView is what a snapshot shows: the playlist in order with its
// cursor, and the rating tree.
type SnapshotView struct {
	Songs   []model.Song
	Current int // position of the current song, -1 for none
	Tree    *ratingtree.Node
}

// SnapshotService draws session snapshots as PNG images.
//
// The playlist is drawn as a row of labelled ovals joined by lines, with
// the current song highlighted. The rating tree is drawn below it, each
// bucket labelled "rating: first song", children spread by an offset that
// halves at every level. Anything that falls outside the canvas is
// clipped.
//
// Example usage:
//
//	svc := NewSnapshotService()
//	data, err := svc.RenderPNG(ctx, view, 1200, 600)
//	err = WriteFile(ctx, "snapshot.png", data)
type SnapshotService struct{}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService() *SnapshotService {
	return &SnapshotService{}
}

// Render draws the view on a BaseWidth x BaseHeight canvas.
func (s *SnapshotService) Render(view SnapshotView) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseWidth, BaseHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundColor}, image.Point{}, draw.Src)

	s.drawPlaylist(img, view)
	s.drawTree(img, view.Tree)

	return img
}

// RenderPNG draws the view and returns it PNG-encoded at width x height.
//
// The canvas is scaled with Catmull-Rom when the size differs from the
// base size. Non-positive dimensions keep the base size.
func (s *SnapshotService) RenderPNG(ctx context.Context, view SnapshotView, width, height int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var img image.Image = s.Render(view)
	if width > 0 && height > 0 && (width != BaseWidth || height != BaseHeight) {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *SnapshotService) drawPlaylist(img *image.RGBA, view SnapshotView) {
	x := listStartX
	for i, song := range view.Songs {
		if i < len(view.Songs)-1 {
			drawLine(img, x+nodeRadiusX, listY, x+listStep-nodeRadiusX, listY, edgeColor)
		}

		fill := nodeColor
		if i == view.Current {
			fill = currentColor
		}
		fillEllipse(img, x, listY, nodeRadiusX, nodeRadiusY, fill)
		drawLabel(img, x, listY, song.String())

		x += listStep
	}
}

type treeFrame struct {
	node   *ratingtree.Node
	x, y   int
	offset int
}

// drawTree walks the tree with an explicit stack so a skewed tree cannot
// exhaust the call stack.
func (s *SnapshotService) drawTree(img *image.RGBA, root *ratingtree.Node) {
	if root == nil {
		return
	}

	stack := []treeFrame{{node: root, x: BaseWidth / 2, y: treeY, offset: treeOffset}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Stop once the tree is far below the canvas.
		if f.y-nodeRadiusY > BaseHeight {
			continue
		}

		childY := f.y + treeLevelStep
		if left := f.node.Left(); left != nil {
			drawLine(img, f.x, f.y+nodeRadiusY, f.x-f.offset, childY, edgeColor)
			stack = append(stack, treeFrame{node: left, x: f.x - f.offset, y: childY, offset: f.offset / 2})
		}
		if right := f.node.Right(); right != nil {
			drawLine(img, f.x, f.y+nodeRadiusY, f.x+f.offset, childY, edgeColor)
			stack = append(stack, treeFrame{node: right, x: f.x + f.offset, y: childY, offset: f.offset / 2})
		}

		fillEllipse(img, f.x, f.y, nodeRadiusX, nodeRadiusY, nodeColor)
		label := ""
		if songs := f.node.Songs(); len(songs) > 0 {
			label = songs[0]
		}
		drawLabel(img, f.x, f.y, strconv.Itoa(f.node.Rating())+": "+label)
	}
}

// fillEllipse paints an axis-aligned ellipse centred on (cx, cy).
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	bounds := img.Bounds()
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if dx*dx*ry*ry+dy*dy*rx*rx > rx*rx*ry*ry {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(bounds) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

// drawLine paints a one-pixel line with Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	bounds := img.Bounds()
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(bounds) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLabel writes text centred on (cx, cy).
func drawLabel(img *image.RGBA, cx, cy int, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(cx-width/2, cy+face.Ascent/2),
	}
	d.DrawString(text)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
