package infra

// pdf.go — Inventory status report generation using go-pdf/fpdf.
// Produces an A4 landscape table of every inventory item with its quantity,
// reorder level, unit price and derived status, for printing or archiving.
//
// The output file is saved to storagePath/inventory_report_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateInventoryReportPDF writes an inventory snapshot report and returns
// the absolute path to the generated file.
func GenerateInventoryReportPDF(storeName string, items []model.Inventory, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("inventory_report_%d.pdf", time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, storeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Inventory Status Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64
	}{
		{"SKU", 35},
		{"Item", 75},
		{"Qty", 20},
		{"Unit", 22},
		{"Reorder", 22},
		{"Unit Price", 28},
		{"Status", 35},
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, item := range items {
		if pdf.GetY() > 180 {
			pdf.AddPage()
		}
		pdf.CellFormat(cols[0].width, 6, item.SKU, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, 6, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].width, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].width, 6, item.OrderUnit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[4].width, 6, fmt.Sprintf("%d", item.ReorderLevel), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[5].width, 6, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")

		if item.Status != model.StatusInStock {
			pdf.SetFont("Helvetica", "B", 8)
		}
		pdf.CellFormat(cols[6].width, 6, string(item.Status), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.Ln(-1)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d items", len(items)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write report: %w", err)
	}
	return filePath, nil
}
