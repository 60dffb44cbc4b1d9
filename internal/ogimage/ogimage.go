// Package ogimage draws the Open Graph share card served at /og-image.png.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1200
	Height = 630
)

var (
	bgDark  = color.RGBA{R: 0x00, G: 0x12, B: 0x19, A: 0xff}
	bgTeal  = color.RGBA{R: 0x00, G: 0x5f, B: 0x73, A: 0xff}
	primary = color.RGBA{R: 0x0a, G: 0x93, B: 0x96, A: 0xff}
	cream   = color.RGBA{R: 0xe9, G: 0xd8, B: 0xa6, A: 0xff}
	gold    = color.RGBA{R: 0xee, G: 0x9b, B: 0x00, A: 0xff}
)

// Card is the text drawn on the share image
type Card struct {
	Title    string
	Subtitle string
	Footer   string
}

// Renderer draws the card once and serves the cached PNG afterwards
type Renderer struct {
	card Card
	once sync.Once
	png  []byte
	err  error
}

func NewRenderer(card Card) *Renderer {
	return &Renderer{card: card}
}

func (r *Renderer) PNG() ([]byte, error) {
	r.once.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Draw(r.card)); err != nil {
			r.err = fmt.Errorf("encode og image: %w", err)
			return
		}
		r.png = buf.Bytes()
	})
	return r.png, r.err
}

// Draw renders the card at Width x Height
func Draw(card Card) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(dst, bgDark, bgTeal)

	// accent bars
	draw.Draw(dst, image.Rect(0, 0, Width, 12), image.NewUniform(primary), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(80, 430, 280, 438), image.NewUniform(gold), image.Point{}, draw.Src)

	drawText(dst, card.Title, image.Pt(80, 170), 5, cream, Width-160)
	drawText(dst, card.Subtitle, image.Pt(80, 330), 3, color.White, Width-160)
	drawText(dst, card.Footer, image.Pt(80, 500), 3, gold, Width-160)
	return dst
}

func fillGradient(dst *image.RGBA, top, bottom color.RGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(h)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// drawText renders s with the 7x13 bitmap face on a small canvas and scales
// it by scale onto dst at origin. Text wider than maxWidth is truncated.
func drawText(dst *image.RGBA, s string, origin image.Point, scale int, c color.Color, maxWidth int) {
	if s == "" || scale < 1 {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}

	maxRunes := maxWidth / (face.Advance * scale)
	if runes := []rune(s); len(runes) > maxRunes {
		s = string(runes[:maxRunes-3]) + "..."
	}

	w := d.MeasureString(s).Ceil()
	h := face.Height
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = small
	d.Src = image.NewUniform(c)
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)

	target := image.Rect(origin.X, origin.Y, origin.X+w*scale, origin.Y+h*scale)
	draw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), draw.Over, nil)
}
