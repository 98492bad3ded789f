package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth   = 180.0
	lineHeight  = 7.0
	titleHeight = 12.0
)

// WritePDF renders rep as an A4 PDF: the category table first, then one
// recommendation table per dominant category.
func WritePDF(w io.Writer, rep Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hasil Tes Minat RIASEC", true)
	pdf.SetCreator("minatgo", true)
	pdf.SetCreationDate(rep.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(pageWidth, titleHeight, tr("Hasil Tes Minat RIASEC"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(pageWidth, lineHeight,
		tr(fmt.Sprintf("%d dari %d pertanyaan dijawab  |  %s",
			rep.Answered, rep.Total, rep.GeneratedAt.Format("02 Jan 2006 15:04"))),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	header(pdf, tr, []string{"Tipe", "Keterangan", "Persentase"}, []float64{25, 115, 40})
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rep.Rows {
		style := ""
		if row.Dominant {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(25, lineHeight, string(row.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(115, lineHeight, tr(row.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, lineHeight, fmt.Sprintf("%d%%", row.Percent), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	if len(rep.Dominant) == 0 {
		pdf.CellFormat(pageWidth, lineHeight, tr("Belum ada tipe dominan."), "", 1, "L", false, 0, "")
	} else {
		codes := make([]string, len(rep.Dominant))
		for i, c := range rep.Dominant {
			codes[i] = string(c)
		}
		pdf.CellFormat(pageWidth, lineHeight,
			tr("Tipe dominan: "+strings.Join(codes, ", ")), "", 1, "L", false, 0, "")
	}

	for _, rec := range rep.Recommendations {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(pageWidth, lineHeight, tr("Rekomendasi untuk "+rec.Label), "", 1, "L", false, 0, "")
		header(pdf, tr, []string{"Jurusan", "Pekerjaan", "Kegiatan"}, []float64{60, 60, 60})
		pdf.SetFont("Helvetica", "", 10)
		n := max(len(rec.Majors), len(rec.Jobs), len(rec.Activities))
		for i := 0; i < n; i++ {
			pdf.CellFormat(60, lineHeight, tr(at(rec.Majors, i)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, lineHeight, tr(at(rec.Jobs, i)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, lineHeight, tr(at(rec.Activities, i)), "1", 1, "L", false, 0, "")
		}
	}

	if rep.Insight != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(pageWidth, lineHeight, tr("Catatan"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(pageWidth, 5, tr(rep.Insight), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func header(pdf *fpdf.Fpdf, tr func(string) string, cols []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 240)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], lineHeight, tr(c), "1", ln, "C", true, 0, "")
	}
}

func at(xs []string, i int) string {
	if i < len(xs) {
		return xs[i]
	}
	return ""
}

// SavePDF writes rep as a PDF file at path. A partly written file is removed.
func SavePDF(path string, rep Report) error {
	return saveFile(path, rep, WritePDF)
}

func saveFile(path string, rep Report, write func(io.Writer, Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f, rep)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
