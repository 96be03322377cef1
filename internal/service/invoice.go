package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"bookbarber/internal/domain"
	"bookbarber/pkg/format"
)

// Display sentinels for missing data, as the booking screens word them.
const (
	undeterminedTotal    = "Chưa xác định"
	undeterminedDuration = "Không xác định"
)

type InvoiceServiceImpl struct {
	appointments AppointmentService
	logger       *zap.Logger
}

func NewInvoiceService(appointments AppointmentService, logger *zap.Logger) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		appointments: appointments,
		logger:       logger,
	}
}

// Build assembles the electronic invoice for one appointment. The
// customer and business contact blocks carry the fixed single-user
// identity; only the shop name and address come from the record.
func (s *InvoiceServiceImpl) Build(ctx context.Context, appointmentID string) (*domain.Invoice, error) {
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		s.logger.Warn("appointment for invoice not found", zap.String("id", appointmentID))
		return nil, err
	}

	lines := make([]domain.InvoiceLine, 0, len(appointment.ServicesDetail))
	for _, item := range appointment.ServicesDetail {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lines = append(lines, domain.InvoiceLine{
			Name:      item.Name,
			Duration:  item.Duration,
			Quantity:  quantity,
			UnitPrice: item.PriceValue,
			Amount:    item.PriceValue * int64(quantity),
		})
	}

	durationText := undeterminedDuration
	if minutes, ok := s.appointments.TotalDuration(*appointment); ok {
		durationText = fmt.Sprintf("%d phút", minutes)
	}

	payment := domain.InvoicePayment{
		Method:        appointment.PaymentMethod,
		MethodLabel:   appointment.PaymentMethod.InvoiceLabel(),
		TransactionID: transactionRef(),
		Paid:          appointment.Status == domain.AppointmentStatusCompleted,
	}
	if appointment.PaymentMethod == domain.PaymentMethodBank {
		payment.BankName = "Ngân hàng BIDV"
		payment.AccountNumber = "12345678901"
	}

	return &domain.Invoice{
		Number:          invoiceNumber(appointment.ID),
		IssueDate:       time.Now().Format("02/01/2006"),
		DueDate:         appointment.Date,
		AppointmentTime: appointment.Time,
		Status:          appointment.Status,
		Business: domain.InvoiceParty{
			Name:    appointment.BarberShop,
			Address: appointment.Address,
			Phone:   "0123456789",
			Email:   "contact@barbershop.com",
			TaxCode: "0123456789",
			Website: "www.barbershop.com",
		},
		Customer: domain.InvoiceParty{
			Name:    "Nguyễn Văn A",
			Phone:   "0987654321",
			Email:   "nguyenvana@email.com",
			Address: "123 Đường ABC, Quận 1, TP.HCM",
		},
		Lines:         lines,
		TotalDuration: durationText,
		Subtotal:      appointment.TotalAmount,
		Discount:      0,
		VATPercent:    0,
		Total:         appointment.TotalAmount,
		Payment:       payment,
	}, nil
}

func (s *InvoiceServiceImpl) RenderPDF(ctx context.Context, appointmentID string) ([]byte, string, error) {
	invoice, err := s.Build(ctx, appointmentID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hoa don dien tu", false)
	pdf.AddPage()
	// Core fonts are cp1252-only; the translator maps what it can and
	// degrades the rest instead of corrupting the document.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("HÓA ĐƠN ĐIỆN TỬ"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Mã HĐ      : "+invoice.Number))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Ngày xuất  : "+invoice.IssueDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Ngày hẹn   : "+invoice.DueDate+" "+invoice.AppointmentTime))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Thông tin doanh nghiệp:"))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		invoice.Business.Name,
		invoice.Business.Address,
		"SĐT: " + invoice.Business.Phone + "  Email: " + invoice.Business.Email,
		"MST: " + invoice.Business.TaxCode + "  " + invoice.Business.Website,
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Khách hàng:"))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(invoice.Customer.Name+"  SĐT: "+invoice.Customer.Phone))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(invoice.Customer.Address))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Chi tiết dịch vụ:"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(invoice.Lines) == 0 {
		pdf.MultiCell(0, 6, tr("Không có chi tiết dịch vụ."), "", "", false)
		pdf.Ln(2)
	}
	for i, line := range invoice.Lines {
		desc := fmt.Sprintf("%d) %s x%d (%s) - %s",
			i+1, line.Name, line.Quantity, line.Duration, format.VND(line.Amount))
		pdf.MultiCell(0, 6, tr(desc), "", "", false)
		pdf.Ln(1)
	}
	pdf.Ln(4)

	totalText := undeterminedTotal
	if invoice.Total != nil {
		totalText = format.VND(*invoice.Total)
	}
	pdf.Cell(0, 6, tr("Thời gian thực hiện: "+invoice.TotalDuration))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Giảm giá: %s  Thuế VAT (%d%%): 0 VND", format.VND(invoice.Discount), invoice.VATPercent)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("TỔNG CỘNG: "+totalText))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Phương thức: "+invoice.Payment.MethodLabel))
	pdf.Ln(6)
	if invoice.Payment.BankName != "" {
		pdf.Cell(0, 6, tr("Ngân hàng: "+invoice.Payment.BankName+"  STK: "+invoice.Payment.AccountNumber))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr("Mã giao dịch: "+invoice.Payment.TransactionID))
	pdf.Ln(6)
	status := "Chưa thanh toán"
	if invoice.Payment.Paid {
		status = "Đã thanh toán"
	}
	pdf.Cell(0, 6, tr("Trạng thái: "+status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Cảm ơn quý khách đã tin tưởng và sử dụng dịch vụ! Hóa đơn được tạo tự động bởi hệ thống BookBarber."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("rendering invoice PDF: %w", err)
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", invoice.Number)
	return buf.Bytes(), filename, nil
}

// invoiceNumber derives the display number from the last six characters
// of the appointment id: "HD" + "A1B2C3".
func invoiceNumber(appointmentID string) string {
	suffix := appointmentID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "HD" + strings.ToUpper(suffix)
}

func transactionRef() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "TXN" + millis
}
