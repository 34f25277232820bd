// Package pdf, teklif PDF'i üretir.
//
// go-pdf/fpdf core fontları (Helvetica) cp1254 (Turkish) code page ile
// kullanılır — UnicodeTranslatorFromDescriptor Türkçe karakterleri
// (ğ, ş, İ, ı...) doğru basar. ₺ işareti cp1254'te yoktur, tutarlar
// "TL" son ekiyle yazılır.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/teklifgo/server/models"
)

// Renkler (RGB) — başlık ve tablo header'ında kullanılır.
var (
	colorPrimary = [3]int{30, 41, 59}    // koyu lacivert
	colorAccent  = [3]int{99, 102, 241}  // indigo
	colorMuted   = [3]int{100, 116, 139} // gri
	colorRow     = [3]int{241, 245, 249} // zebra satır arkaplanı
)

// BuildQuotation, teklif PDF'ini üretip byte olarak döner.
// user firma bilgilerini (başlık), quotation müşteri + kalemleri taşır.
// quotation.Customer nil olmamalıdır — repository join ile doldurur.
func BuildQuotation(user *models.User, quotation *models.Quotation) ([]byte, error) {
	if quotation.Customer == nil {
		return nil, fmt.Errorf("quotation has no customer loaded")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	writeHeader(pdf, tr, quotation)
	writeParties(pdf, tr, user, quotation.Customer)
	writeItemsTable(pdf, tr, quotation.Items)
	writeTotals(pdf, tr, quotation)
	writeNotes(pdf, tr, quotation.Notes)
	writeFooter(pdf, tr, user)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quotation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, q *models.Quotation) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.CellFormat(0, 12, tr("FİYAT TEKLİFİ"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Teklif No: %s", q.QuotationNumber)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Tarih: %s", q.CreatedAt.Format("02.01.2006"))), "", 1, "L", false, 0, "")

	// Başlık altı ayraç çizgisi
	pdf.SetDrawColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetLineWidth(0.6)
	y := pdf.GetY() + 2
	pdf.Line(10, y, 200, y)
	pdf.SetY(y + 6)
}

// writeParties, sol tarafa firma, sağ tarafa müşteri bloğunu yazar.
func writeParties(pdf *fpdf.Fpdf, tr func(string) string, user *models.User, customer *models.Customer) {
	top := pdf.GetY()

	// Firma (sol)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	company := user.FullName
	if user.Company != nil && *user.Company != "" {
		company = *user.Company
	}
	pdf.SetXY(10, top)
	pdf.CellFormat(95, 6, tr(company), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	for _, line := range companyLines(user) {
		pdf.SetX(10)
		pdf.CellFormat(95, 5, tr(line), "", 1, "L", false, 0, "")
	}
	leftBottom := pdf.GetY()

	// Müşteri (sağ)
	pdf.SetXY(110, top)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.CellFormat(90, 5, tr("SAYIN"), "", 1, "L", false, 0, "")

	pdf.SetX(110)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.CellFormat(90, 6, tr(customer.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	for _, line := range customerLines(customer) {
		pdf.SetX(110)
		pdf.CellFormat(90, 5, tr(line), "", 1, "L", false, 0, "")
	}

	if pdf.GetY() < leftBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(8)
}

func companyLines(user *models.User) []string {
	lines := []string{}
	if user.CompanyAddress != nil && *user.CompanyAddress != "" {
		lines = append(lines, *user.CompanyAddress)
	}
	if user.Phone != nil && *user.Phone != "" {
		lines = append(lines, "Tel: "+*user.Phone)
	}
	lines = append(lines, user.Email)
	if user.CompanyTaxOffice != nil && *user.CompanyTaxOffice != "" {
		lines = append(lines, "Vergi Dairesi: "+*user.CompanyTaxOffice)
	}
	if user.CompanyTaxNumber != nil && *user.CompanyTaxNumber != "" {
		lines = append(lines, "Vergi No: "+*user.CompanyTaxNumber)
	}
	return lines
}

func customerLines(customer *models.Customer) []string {
	lines := []string{}
	if customer.Company != nil && *customer.Company != "" {
		lines = append(lines, *customer.Company)
	}
	if customer.Address != nil && *customer.Address != "" {
		lines = append(lines, *customer.Address)
	}
	if customer.Phone != nil && *customer.Phone != "" {
		lines = append(lines, "Tel: "+*customer.Phone)
	}
	if customer.Email != nil && *customer.Email != "" {
		lines = append(lines, *customer.Email)
	}
	if customer.TaxOffice != nil && *customer.TaxOffice != "" {
		lines = append(lines, "Vergi Dairesi: "+*customer.TaxOffice)
	}
	if customer.TaxNumber != nil && *customer.TaxNumber != "" {
		lines = append(lines, "Vergi No: "+*customer.TaxNumber)
	}
	return lines
}

// Tablo kolon genişlikleri (mm, toplam 190).
var itemColWidths = [5]float64{80, 25, 20, 32, 33}

func writeItemsTable(pdf *fpdf.Fpdf, tr func(string) string, items []models.QuotationItem) {
	headers := [5]string{"Ürün / Hizmet", "Miktar", "Birim", "Birim Fiyat", "Tutar"}
	aligns := [5]string{"L", "C", "C", "R", "R"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(itemColWidths[i], 8, tr(h), "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	for i, item := range items {
		fill := i%2 == 1
		pdf.SetFillColor(colorRow[0], colorRow[1], colorRow[2])

		name := item.ProductName
		if item.Specifications != nil && *item.Specifications != "" {
			name += " (" + *item.Specifications + ")"
		}
		pdf.CellFormat(itemColWidths[0], 7, tr(name), "", 0, "L", fill, 0, "")
		pdf.CellFormat(itemColWidths[1], 7, strconv.Itoa(item.Quantity), "", 0, "C", fill, 0, "")
		pdf.CellFormat(itemColWidths[2], 7, tr(item.Unit), "", 0, "C", fill, 0, "")
		pdf.CellFormat(itemColWidths[3], 7, tr(formatMoney(item.UnitPrice)), "", 0, "R", fill, 0, "")
		pdf.CellFormat(itemColWidths[4], 7, tr(formatMoney(item.Total)), "", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeTotals(pdf *fpdf.Fpdf, tr func(string) string, q *models.Quotation) {
	writeRow := func(label, value string, bold bool) {
		if bold {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
		} else {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
		}
		pdf.SetX(125)
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, tr(value), "", 1, "R", false, 0, "")
	}

	writeRow("Ara Toplam", formatMoney(q.Subtotal), false)
	if q.DiscountAmount > 0 {
		writeRow("İndirim", "-"+formatMoney(q.DiscountAmount), false)
	}
	writeRow(fmt.Sprintf("KDV (%%%d)", q.TaxRate), formatMoney(q.TaxAmount), false)
	writeRow("Genel Toplam", formatMoney(q.Total), true)
	pdf.Ln(6)
}

func writeNotes(pdf *fpdf.Fpdf, tr func(string) string, notes *string) {
	if notes == nil || *notes == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.CellFormat(0, 6, tr("Notlar"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.MultiCell(0, 5, tr(*notes), "", "L", false)
	pdf.Ln(4)
}

func writeFooter(pdf *fpdf.Fpdf, tr func(string) string, user *models.User) {
	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	company := user.FullName
	if user.Company != nil && *user.Company != "" {
		company = *user.Company
	}
	pdf.CellFormat(0, 5,
		tr(fmt.Sprintf("%s - %s tarihinde oluşturuldu", company, time.Now().Format("02.01.2006"))),
		"", 1, "C", false, 0, "")
}

// formatMoney, tutarı Türk formatında yazar: 1.234,56 TL.
// cp1254'te ₺ bulunmadığından "TL" kullanılır.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}

	var out []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := string(out) + "," + frac + " TL"
	if neg {
		return "-" + result
	}
	return result
}
