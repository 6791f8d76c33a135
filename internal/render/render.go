package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"io"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/highlight"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

const DefaultSquareSize = 64

const margin = 20

var (
	lightSquare     = color.RGBA{233, 207, 163, 255}
	darkSquare      = color.RGBA{187, 136, 96, 255}
	selectedOverlay = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	backgroundColor = color.RGBA{40, 44, 52, 255}
	coordinateColor = color.RGBA{200, 204, 212, 255}
	friendlyText    = color.RGBA{20, 20, 20, 255}
	enemyText       = color.RGBA{240, 240, 240, 255}
)

const quietMarkerSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<circle cx="50" cy="50" r="16" fill="#14551e" fill-opacity="0.6"/></svg>`

const captureMarkerSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<circle cx="50" cy="50" r="44" fill="none" stroke="#b4231e" stroke-opacity="0.8" stroke-width="10"/></svg>`

const pieceSvgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<circle cx="50" cy="50" r="30" fill="%s" stroke="%s" stroke-width="4"/></svg>`

// PNG draws a board with highlight markers. It implements
// highlight.Renderer and highlight.Selectable.
type PNG struct {
	board      *board.Board
	squareSize int
	grid       *highlight.Grid
}

var _ highlight.Renderer = (*PNG)(nil)
var _ highlight.Selectable = (*PNG)(nil)

func NewPNG(b *board.Board, squareSize int) *PNG {
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}
	return &PNG{board: b, squareSize: squareSize, grid: highlight.NewGrid()}
}

func (r *PNG) Clear() {
	r.grid.Clear()
}

func (r *PNG) Highlight(c Coordinate) {
	r.grid.Highlight(c)
}

func (r *PNG) HighlightTake(c Coordinate) {
	r.grid.HighlightTake(c)
}

func (r *PNG) Select(c Coordinate) {
	r.grid.Select(c)
}

func (r *PNG) Deselect() {
	r.grid.Deselect()
}

func (r *PNG) SquareSize() int {
	return r.squareSize
}

// TileRect is where c is drawn; row 7 is at the top.
func (r *PNG) TileRect(c Coordinate) image.Rectangle {
	x := margin + c.Col*r.squareSize
	y := margin + (BoardSize-1-c.Row)*r.squareSize
	return image.Rect(x, y, x+r.squareSize, y+r.squareSize)
}

func (r *PNG) Draw(ctx context.Context) (*image.RGBA, Error) {
	size := margin*2 + BoardSize*r.squareSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	if err := ctx.Err(); err != nil {
		return nil, Wrap(err)
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coordinate{Row: row, Col: col}
			imagedraw.Draw(img, r.TileRect(c), image.NewUniform(SquareColor(c)), image.Point{}, imagedraw.Src)
		}
	}

	if selected := r.grid.Selected(); selected.HasValue() && selected.Value().InBounds() {
		imagedraw.Draw(img, r.TileRect(selected.Value()), image.NewUniform(selectedOverlay), image.Point{}, imagedraw.Over)
	}

	var drawErr Error
	r.board.EachPiece(func(c Coordinate, p board.Piece) {
		if IsNil(drawErr) {
			drawErr = r.drawPiece(img, c, p)
		}
	})
	if !IsNil(drawErr) {
		return nil, drawErr
	}

	for _, c := range r.grid.Tiles() {
		svg := quietMarkerSvg
		if r.grid.At(c) == highlight.Capturable {
			svg = captureMarkerSvg
		}
		marker, err := rasterize(svg, r.squareSize)
		if !IsNil(err) {
			return nil, err
		}
		imagedraw.Draw(img, r.TileRect(c), marker, image.Point{}, imagedraw.Over)
	}

	r.drawCoordinates(img)

	if err := ctx.Err(); err != nil {
		return nil, Wrap(err)
	}
	return img, NilError
}

func (r *PNG) Encode(ctx context.Context, w io.Writer) Error {
	img, err := r.Draw(ctx)
	if !IsNil(err) {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return Errorf("encode png: %w", err)
	}
	return NilError
}

func (r *PNG) drawPiece(img *image.RGBA, c Coordinate, p board.Piece) Error {
	fill, stroke, text := "#f5f5f5", "#222222", friendlyText
	if p.Side() == Enemy {
		fill, stroke, text = "#2b2b2b", "#dddddd", enemyText
	}

	token, err := rasterize(fmt.Sprintf(pieceSvgTemplate, fill, stroke), r.squareSize)
	if !IsNil(err) {
		return err
	}
	rect := r.TileRect(c)
	imagedraw.Draw(img, rect, token, image.Point{}, imagedraw.Over)

	center := rect.Min.Add(image.Pt(r.squareSize/2, r.squareSize/2))
	drawCenteredString(img, strings.ToUpper(p.Kind().String()), center, text)
	return NilError
}

func (r *PNG) drawCoordinates(img *image.RGBA) {
	for i := 0; i < BoardSize; i++ {
		name := r.board.SquareName(Coordinate{Row: i, Col: i})

		fileTile := r.TileRect(Coordinate{Row: 0, Col: i})
		drawCenteredString(img, name[:1], image.Pt((fileTile.Min.X+fileTile.Max.X)/2, fileTile.Max.Y+margin/2), coordinateColor)

		rankTile := r.TileRect(Coordinate{Row: i, Col: 0})
		drawCenteredString(img, name[1:], image.Pt(margin/2, (rankTile.Min.Y+rankTile.Max.Y)/2), coordinateColor)
	}
}

func drawCenteredString(img *image.RGBA, s string, center image.Point, clr color.Color) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
	}
	width := drawer.MeasureString(s).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	drawer.Dot = fixed.P(center.X-width/2, center.Y+height/2-metrics.Descent.Ceil())
	drawer.DrawString(s)
}

func SquareColor(c Coordinate) color.Color {
	if (c.Row+c.Col)%2 == 0 {
		return darkSquare
	}
	return lightSquare
}

type rasterKey struct {
	svg  string
	size int
}

var (
	rasterCache   = map[rasterKey]image.Image{}
	rasterCacheMu sync.RWMutex
)

func rasterize(svg string, size int) (image.Image, Error) {
	key := rasterKey{svg: svg, size: size}

	rasterCacheMu.RLock()
	if img, ok := rasterCache[key]; ok {
		rasterCacheMu.RUnlock()
		return img, NilError
	}
	rasterCacheMu.RUnlock()

	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	rasterCacheMu.Lock()
	rasterCache[key] = img
	rasterCacheMu.Unlock()

	return img, NilError
}
