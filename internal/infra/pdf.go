package infra

// pdf.go — printable shopping list using go-pdf/fpdf.
// One section for items planned to buy, one for items running low,
// each row showing name, current quantity/unit and threshold.

import (
	"fmt"
	"io"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/model"

	"github.com/go-pdf/fpdf"
)

// WriteShoppingListPDF renders toBuy and low items as an A5 shopping list and
// writes the document to w.
func WriteShoppingListPDF(w io.Writer, toBuy, low []model.Item, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Shopping List", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, now.Format("Mon 02 Jan 2006 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	section := func(title string, items []model.Item) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, title, "B", 1, "L", false, 0, "")

		if len(items) == 0 {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(contentW, 5, "nothing here", "", 1, "L", false, 0, "")
			pdf.Ln(2)
			return
		}

		col1 := contentW * 0.55 // name
		col2 := contentW * 0.25 // have
		col3 := contentW * 0.20 // threshold

		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "Have", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 5, "Min", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, it := range items {
			pdf.CellFormat(col1, 5, it.Name, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("%.4g %s", it.Quantity, it.Unit), "", 0, "R", false, 0, "")
			pdf.CellFormat(col3, 5, fmt.Sprintf("%.4g", it.LowThreshold), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	section("Planned to buy", toBuy)
	section("Running low", low)

	return pdf.Output(w)
}
