package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceData carries everything the invoice document shows.
type InvoiceData struct {
	InvoiceNumber string
	IssuedAt      time.Time
	PaymentDate   time.Time
	Amount        float64
	Reference     string

	Company CompanyData
	Seller  SellerData
}

type CompanyData struct {
	Name    string
	Address string
	City    string
	Email   string
	Phone   string
}

type SellerData struct {
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	Address      string
}

// Invoice renders a fixed-layout A4 invoice and returns the PDF bytes.
// Rendering is pure: the same data always produces the same bytes
// (the document creation date is pinned to IssuedAt).
func Invoice(data InvoiceData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(data.IssuedAt.UTC())
	doc.SetMargins(18, 18, 18)
	doc.AddPage()

	// Title
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Company block (left)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 5, data.Company.Name, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	for _, line := range []string{
		data.Company.Address,
		data.Company.City,
		"Email: " + data.Company.Email,
		"Phone: " + data.Company.Phone,
	} {
		doc.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
	}

	// Invoice meta (right)
	doc.SetY(48)
	doc.SetFont("Helvetica", "", 10)
	metaX := 120.0
	doc.SetX(metaX)
	doc.CellFormat(0, 5, "Invoice Number: "+data.InvoiceNumber, "", 1, "L", false, 0, "")
	doc.SetX(metaX)
	doc.CellFormat(0, 5, "Date: "+data.IssuedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	doc.SetX(metaX)
	doc.CellFormat(0, 5, "Payment Date: "+data.PaymentDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")

	// Bill-to block
	doc.SetY(85)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		data.Seller.BusinessName,
		data.Seller.ContactName,
		data.Seller.Email,
		data.Seller.Phone,
		data.Seller.Address,
	} {
		if line == "" {
			continue
		}
		doc.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	// Single line item covering the full payment amount
	amount := fmt.Sprintf("$%.2f", data.Amount)

	doc.SetY(130)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(90, 6, "Description", "B", 0, "L", false, 0, "")
	doc.CellFormat(28, 6, "Quantity", "B", 0, "R", false, 0, "")
	doc.CellFormat(28, 6, "Price", "B", 0, "R", false, 0, "")
	doc.CellFormat(28, 6, "Amount", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(90, 7, "Payment Received", "", 0, "L", false, 0, "")
	doc.CellFormat(28, 7, "1", "", 0, "R", false, 0, "")
	doc.CellFormat(28, 7, amount, "", 0, "R", false, 0, "")
	doc.CellFormat(28, 7, amount, "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(146, 9, "Total:", "T", 0, "R", false, 0, "")
	doc.CellFormat(28, 9, amount, "T", 1, "R", false, 0, "")

	if data.Reference != "" {
		doc.Ln(6)
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(0, 5, "Reference: "+data.Reference, "", 1, "L", false, 0, "")
	}

	doc.SetY(270)
	doc.SetFont("Helvetica", "I", 8)
	doc.CellFormat(0, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
