package donation

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptPDF renders a donation receipt. Only verified donations get a
// receipt; callers asking for one on a pending or rejected donation get
// an error.
func (s *service) ReceiptPDF(ctx context.Context, id uint) ([]byte, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != StatusVerified {
		return nil, fmt.Errorf("receipt is only available for verified donations")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Donation Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "Donation Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Sahayog Nepal", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	addRow := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	addRow("Receipt No.", fmt.Sprintf("DON-%06d", d.ID))
	addRow("Donor", d.DonorName)
	addRow("Email", d.DonorEmail)
	addRow("Country", d.DonorCountry)
	addRow("Amount", fmt.Sprintf("%s %.2f", d.Currency, d.Amount))
	addRow("Payment Method", d.PaymentMethod)
	addRow("Donated On", d.CreatedAt.Format("2 January 2006"))
	if d.VerifiedAt != nil {
		addRow("Verified On", d.VerifiedAt.Format("2 January 2006"))
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your generous contribution. This receipt confirms that your donation has been received and verified.", "", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s", time.Now().Format("2 January 2006 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
