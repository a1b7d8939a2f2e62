package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// encodePDF writes a one page PDF whose page is exactly the frame, one
// point per pixel.
func encodePDF(w io.Writer, img *image.RGBA, opts Options) error {
	var frame bytes.Buffer
	if err := png.Encode(&frame, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	b := img.Bounds()
	pw, ph := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetCreator("frender", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("frame", imgOpts, &frame)
	pdf.ImageOptions("frame", 0, 0, pw, ph, false, imgOpts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
