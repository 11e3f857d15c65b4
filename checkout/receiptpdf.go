package checkout

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"minikart/models"
)

// renderReceiptPDF lays out the receipt on an A4 page with a QR code that
// encodes the receipt id and timestamp for later verification.
func renderReceiptPDF(receipt models.Receipt) ([]byte, error) {
	qrData := fmt.Sprintf("rid=%s&ts=%d", receipt.ReceiptID, receipt.Timestamp.Unix())
	qrCode, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Receipt info
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Receipt: %s\nIssued: %s",
		receipt.ReceiptID,
		receipt.Timestamp.Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(4)

	// Line items
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range receipt.Items {
		pdf.CellFormat(90, 8, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", it.Price*float64(it.Qty)), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 10, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", receipt.Total), "T", 1, "R", false, 0, "")

	// QR code
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imgOpts, 0, "")

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Thank you for your order.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
