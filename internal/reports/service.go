package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/sahayognepal/charity-backend/internal/donation"
	"github.com/sahayognepal/charity-backend/internal/transaction"
)

var donationHeader = []string{
	"ID", "Donor Name", "Donor Email", "Country", "Amount", "Currency",
	"Payment Method", "Status", "Submitted At", "Verified At",
}

type Service interface {
	DonationsCSV(ctx context.Context, status string) ([]byte, error)
	DonationsExcel(ctx context.Context, status string) ([]byte, error)
	LedgerPDF(ctx context.Context) ([]byte, error)
}

type service struct {
	donations    donation.Service
	transactions transaction.Service
}

func NewService(donations donation.Service, transactions transaction.Service) Service {
	return &service{donations: donations, transactions: transactions}
}

func (s *service) fetchDonations(ctx context.Context, status string) ([]donation.Donation, error) {
	result, err := s.donations.List(ctx, donation.ListFilter{Status: status, Page: 1, Limit: 100})
	if err != nil {
		return nil, err
	}

	all := result.Data
	for page := 2; page <= result.TotalPages; page++ {
		next, err := s.donations.List(ctx, donation.ListFilter{Status: status, Page: page, Limit: 100})
		if err != nil {
			return nil, err
		}
		all = append(all, next.Data...)
	}
	return all, nil
}

func donationRow(d donation.Donation) []string {
	verifiedAt := ""
	if d.VerifiedAt != nil {
		verifiedAt = d.VerifiedAt.Format(time.RFC3339)
	}
	return []string{
		strconv.FormatUint(uint64(d.ID), 10),
		d.DonorName,
		d.DonorEmail,
		d.DonorCountry,
		strconv.FormatFloat(d.Amount, 'f', 2, 64),
		d.Currency,
		d.PaymentMethod,
		d.Status,
		d.CreatedAt.Format(time.RFC3339),
		verifiedAt,
	}
}

func (s *service) DonationsCSV(ctx context.Context, status string) ([]byte, error) {
	donations, err := s.fetchDonations(ctx, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(donationHeader); err != nil {
		return nil, err
	}
	for _, d := range donations {
		if err := w.Write(donationRow(d)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) DonationsExcel(ctx context.Context, status string) ([]byte, error) {
	donations, err := s.fetchDonations(ctx, status)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Donations"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for col, title := range donationHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, d := range donations {
		row := donationRow(d)
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if col == 4 {
				f.SetCellValue(sheet, cell, d.Amount)
				continue
			}
			f.SetCellValue(sheet, cell, value)
		}
	}
	f.SetColWidth(sheet, "A", "J", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) LedgerPDF(ctx context.Context) ([]byte, error) {
	transactions, err := s.transactions.List(ctx, "")
	if err != nil {
		return nil, err
	}
	summary, err := s.transactions.Summary(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transparency Ledger", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Transparency Ledger", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Income: %.2f   Expenses: %.2f   Balance: %.2f",
		summary.TotalIncome, summary.TotalExpense, summary.Balance), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(221, 235, 247)
	pdf.CellFormat(25, 8, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Type", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(80, 8, "Description", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, t := range transactions {
		pdf.CellFormat(25, 7, t.OccurredAt.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, t.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%s %.2f", t.Currency, t.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, t.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, t.Description, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ledger: %w", err)
	}
	return buf.Bytes(), nil
}
