package ui

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/NmadeleiDev/gomoku/internal/board"
)

// stoneSVG is a minimal filled-circle glyph, parameterised by fill/stroke
// color. There is no stone artwork to embed, so the SVG is generated in
// code; oksvg/rasterx do the actual rasterization into a cached image.
const stoneSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<circle cx="50" cy="50" r="44" fill="%s" stroke="%s" stroke-width="4"/>` +
	`</svg>`

// renderStone rasterizes a filled circle at the given pixel size using
// oksvg to parse the glyph and rasterx to scan-convert it, following the
// teacher's SpriteManager.loadPieces pipeline (internal/ui/sprites.go).
func renderStone(fill, stroke string, pixels int) (*ebiten.Image, error) {
	svg := fmt.Sprintf(stoneSVG, fill, stroke)

	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(pixels), float64(pixels))

	rgba := image.NewRGBA(image.Rect(0, 0, pixels, pixels))
	scanner := rasterx.NewScannerGV(pixels, pixels, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(pixels, pixels, scanner)
	icon.Draw(raster, 1.0)

	return ebiten.NewImageFromImage(rgba), nil
}

// StoneSet caches the rasterized stone image per color at one pixel size.
type StoneSet struct {
	images map[board.Color]*ebiten.Image
}

// NewStoneSet renders the black- and white-stone glyphs at pixels diameter.
func NewStoneSet(pixels int) (*StoneSet, error) {
	black, err := renderStone("#101010", "#000000", pixels)
	if err != nil {
		return nil, err
	}
	white, err := renderStone("#f5f5f0", "#202020", pixels)
	if err != nil {
		return nil, err
	}

	return &StoneSet{images: map[board.Color]*ebiten.Image{
		board.Black: black,
		board.White: white,
	}}, nil
}

// Image returns the cached stone image for c, or nil for board.Empty.
func (s *StoneSet) Image(c board.Color) *ebiten.Image {
	return s.images[c]
}
