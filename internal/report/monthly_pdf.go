// Package report renders exports of the derived figures.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const pageWidth = 190

// MonthlyPDF renders a monthly report as an A4 PDF: totals, partner settlement,
// the daily table and sales per cart.
func MonthlyPDF(report domain.MonthlyReport, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 10, "Monthly Report "+report.Month, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(pageWidth, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section(pdf, "Totals")
	pairRow(pdf, "Sales", report.Sales, "Expenses", report.Expenses)
	pairRow(pdf, "Worker payments", report.WorkerPayments, "Profit", report.Profit)
	pairRow(pdf, "Net profit", report.NetProfit, "Pending partner payments", report.PendingPartnerPayments)
	pdf.Ln(4)

	section(pdf, "Partner settlement")
	pairRow(pdf, "Partner share", report.PartnerShare, "Paid", report.CompletedPartnerPaid)
	if report.PendingSettlement.IsPositive() {
		pdf.SetFillColor(255, 220, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 9, "Pending settlement: "+utils.FormatMoney(report.PendingSettlement), "1", 1, "C", true, 0, "")
	pdf.Ln(4)

	section(pdf, "Daily figures")
	widths := []float64{38, 38, 38, 38, 38}
	header(pdf, widths, "Date", "Sales", "Expenses", "Worker payments", "Profit")
	pdf.SetFont("Arial", "", 9)
	for _, row := range report.Days {
		pdf.CellFormat(widths[0], 6, row.Date.Format(domain.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, utils.FormatMoney(row.Sales), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, utils.FormatMoney(row.Expenses), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, utils.FormatMoney(row.WorkerPayments), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, utils.FormatMoney(row.Profit), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Sales by cart")
	if len(report.SalesByCart) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(pageWidth, 7, "No sales recorded", "1", 1, "C", false, 0, "")
	} else {
		header(pdf, []float64{120, 70}, "Cart", "Total")
		pdf.SetFont("Arial", "", 10)
		for _, ct := range report.SalesByCart {
			pdf.CellFormat(120, 6, ct.CartName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, utils.FormatMoney(ct.Total), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render monthly report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 8, title, "1", 1, "L", true, 0, "")
}

func header(pdf *gofpdf.Fpdf, widths []float64, titles ...string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for i, title := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, title, "1", ln, "C", true, 0, "")
	}
}

func pairRow(pdf *gofpdf.Fpdf, leftLabel string, left decimal.Decimal, rightLabel string, right decimal.Decimal) {
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pageWidth/2, 7, fmt.Sprintf("%s: %s", leftLabel, utils.FormatMoney(left)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth/2, 7, fmt.Sprintf("%s: %s", rightLabel, utils.FormatMoney(right)), "1", 1, "L", false, 0, "")
}
