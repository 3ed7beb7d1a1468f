package typeset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize paints the scene into an RGBA image using the faces of fm.
func Rasterize(s *Scene, fm *FontMeasurer) (*image.RGBA, error) {
	w, h := int(math.Ceil(s.Size.Width)), int(math.Ceil(s.Size.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)

	for _, it := range s.Items {
		switch v := it.(type) {
		case Rect:
			paintRect(img, v)
		case Line:
			paintLine(img, v.From.X, v.From.Y, v.To.X, v.To.Y, v.Width, v.Color)
		case Text:
			face, err := fm.Face(v.Size, v.Bold)
			if err != nil {
				return nil, err
			}
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(v.Color),
				Face: face,
				Dot:  fixed.Point26_6{X: floatToFixed(v.Origin.X), Y: floatToFixed(v.Origin.Y)},
			}
			d.DrawString(v.Text)
		default:
			return nil, fmt.Errorf("rasterize: unknown item %T", it)
		}
	}
	return img, nil
}

// WritePNG rasterizes the scene and encodes it as PNG.
func WritePNG(w io.Writer, s *Scene, fm *FontMeasurer) error {
	img, err := Rasterize(s, fm)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if c.A == 0 {
		return
	}
	op := draw.Over
	if c.A == 255 {
		op = draw.Src
	}
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, op)
}

func paintRect(img *image.RGBA, r Rect) {
	x0, y0 := int(math.Round(r.Rect.X)), int(math.Round(r.Rect.Y))
	x1, y1 := int(math.Round(r.Rect.Right())), int(math.Round(r.Rect.Bottom()))
	fill(img, image.Rect(x0, y0, x1, y1), r.Fill)
	if r.Stroke.A == 0 || r.StrokeWidth <= 0 {
		return
	}
	sw := int(math.Max(1, math.Round(r.StrokeWidth)))
	fill(img, image.Rect(x0, y0, x1, y0+sw), r.Stroke)
	fill(img, image.Rect(x0, y1-sw, x1, y1), r.Stroke)
	fill(img, image.Rect(x0, y0, x0+sw, y1), r.Stroke)
	fill(img, image.Rect(x1-sw, y0, x1, y1), r.Stroke)
}

// paintLine stamps width-sized squares along the segment.
func paintLine(img *image.RGBA, x0, y0, x1, y1, width float64, c color.RGBA) {
	half := math.Max(1, width) / 2
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0)))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x, y := x0+(x1-x0)*t, y0+(y1-y0)*t
		r := image.Rect(int(math.Floor(x-half+0.5)), int(math.Floor(y-half+0.5)),
			int(math.Floor(x+half+0.5)), int(math.Floor(y+half+0.5)))
		fill(img, r, c)
	}
}
