package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/reyhanfikri/receipt-gen/receipt"
)

// pdf page geometry, millimeters. 80mm is standard receipt roll width.
const (
	pdfWidth   = 80.0
	pdfMargin  = 6.0
	pdfLineH   = 4.2
	pdfSmallH  = 3.6
	pdfBarH    = 8.0
	pdfGap     = 2.0
	pageHeight = 297.0
)

// RenderPDF packages the document as a single-column PDF in a Courier face.
func RenderPDF(doc receipt.Document) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: pdfWidth, Ht: pageHeight},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	usable := pdfWidth - 2*pdfMargin

	for _, sec := range doc.Sections {
		for _, line := range sec.Lines {
			size, height := 8.0, pdfLineH
			if line.Small {
				size, height = 6.5, pdfSmallH
			}
			pdf.SetFont("Courier", "B", size)

			switch {
			case line.Center:
				pdf.CellFormat(usable, height, line.Left, "", 1, "C", false, 0, "")
			case line.Sub:
				pdf.CellFormat(usable, height, "    "+line.Left, "", 1, "L", false, 0, "")
			default:
				half := usable / 2
				pdf.CellFormat(half, height, line.Left, "", 0, "L", false, 0, "")
				pdf.CellFormat(half, height, line.Right, "", 1, "R", false, 0, "")
			}
		}
		if len(sec.Barcode) > 0 {
			drawPDFBarcode(pdf, sec.Barcode)
		}
		pdf.Ln(pdfGap)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawPDFBarcode(pdf *fpdf.Fpdf, widths []int) {
	x := pdfMargin + 4
	y := pdf.GetY() + 1
	pdf.SetFillColor(0, 0, 0)
	for _, w := range widths {
		bar := float64(w) * 0.5
		pdf.Rect(x, y, bar, pdfBarH, "F")
		x += bar + 1.0
	}
	pdf.SetY(y + pdfBarH + 1)
}
