// Package export turns a rendered receipt document into shareable artifacts:
// a PNG raster or a PDF sized for 80mm receipt paper.
package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/reyhanfikri/receipt-gen/receipt"
)

const (
	paperWidth = 300
	marginX    = 14
	lineHeight = 14
	sectionGap = 8
	barHeight  = 24
)

// RenderPNG rasterizes the document onto a white 300px-wide strip using a
// monospace bitmap face, which matches the dot-matrix look of the real thing.
func RenderPNG(doc receipt.Document) ([]byte, error) {
	height := measure(doc)
	img := image.NewRGBA(image.Rect(0, 0, paperWidth, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}

	y := lineHeight + sectionGap
	for _, sec := range doc.Sections {
		for _, line := range sec.Lines {
			drawLine(drawer, line, y)
			y += lineHeight
		}
		if len(sec.Barcode) > 0 {
			drawBarcode(img, sec.Barcode, y)
			y += barHeight + sectionGap
		}
		y += sectionGap
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func measure(doc receipt.Document) int {
	h := lineHeight + sectionGap
	for _, sec := range doc.Sections {
		h += len(sec.Lines) * lineHeight
		if len(sec.Barcode) > 0 {
			h += barHeight + sectionGap
		}
		h += sectionGap
	}
	return h + lineHeight
}

func drawLine(d *font.Drawer, line receipt.Line, y int) {
	d.Dot = fixed.P(marginX, y)
	if line.Center {
		w := d.MeasureString(line.Left)
		d.Dot.X = fixed.I(paperWidth/2) - w/2
		d.DrawString(line.Left)
		return
	}
	if line.Sub {
		d.Dot = fixed.P(marginX+16, y)
	}
	if line.Left != "" {
		d.DrawString(line.Left)
	}
	if line.Right != "" {
		w := d.MeasureString(line.Right)
		d.Dot = fixed.Point26_6{X: fixed.I(paperWidth-marginX) - w, Y: fixed.I(y)}
		d.DrawString(line.Right)
	}
}

func drawBarcode(img *image.RGBA, widths []int, y int) {
	x := marginX + 10
	for _, w := range widths {
		for dx := 0; dx < w*2; dx++ {
			for dy := 0; dy < barHeight; dy++ {
				img.Set(x+dx, y+dy, color.Black)
			}
		}
		x += w*2 + 4
	}
}
