package main

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 297 // A4 landscape width in mm, wide enough for the table
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 4   // Line height in mm
	pdfFontSize   = 7   // Small enough for a 71-column monospaced row
)

// generatePDF writes the already-rendered report table into a PDF file.
// The table relies on fixed-width alignment, so everything is set in
// Courier.
func generatePDF(table string, summary Summary, outputPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape, mm, A4, default font dir
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Courier", "", pdfFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, table, "", "L", false)
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Helvetica", "", pdfFontSize+1)
	summaryString := fmt.Sprintf("Files scanned: %d\nTotal SLOC: %d\nTotal size: %d bytes",
		summary.TotalFiles, summary.TotalSLOC, summary.TotalSize)
	if summary.TotalTokens > 0 {
		summaryString += fmt.Sprintf("\nTotal tokens: %d", summary.TotalTokens)
	}
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, summaryString, "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}

	fmt.Fprintf(os.Stderr, "Saved PDF report to %s\n", outputPath)
	return nil
}
