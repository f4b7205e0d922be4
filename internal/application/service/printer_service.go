package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sangkips/billing-api/internal/config"
	"github.com/sangkips/billing-api/internal/domain/entity"
	"github.com/sangkips/billing-api/internal/domain/repository"
	"github.com/sangkips/billing-api/pkg/apperror"
	"github.com/sangkips/billing-api/pkg/printer"
)

// PrinterService formats bills as ESC/POS receipts and sends them to the
// configured thermal printer.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	store       config.StoreConfig
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, orderRepo repository.OrderRepository, store config.StoreConfig, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		store:       store,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test bill to the printer. The receipt is returned so
// the handler can show it as JSON when no hardware is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
		},
		BillNumber: "BN-0000",
		Date:       "01-01-2024",
		Time:       "00:00",
		Items: []entity.ReceiptItem{
			{Name: "Test Item", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
		},
		Total: 10.00,
	}

	if err := s.printer.Print(s.formatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintBill fetches the persisted rows of a bill and prints its receipt.
func (s *PrinterService) PrintBill(ctx context.Context, billNumber string) (*entity.Receipt, error) {
	rows, err := s.orderRepo.GetByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.NewNotFoundError("Bill")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
		},
		BillNumber:  billNumber,
		Date:        rows[0].Date,
		Time:        rows[0].Time,
		PaymentType: rows[0].PaymentType.String(),
	}

	var total float64
	for _, row := range rows {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      row.Item,
			Quantity:  row.Quantity,
			UnitPrice: float64(row.UnitPrice) / 100,
			Total:     row.GetLineTotalDecimal(),
		})
		total += row.GetLineTotalDecimal()
	}
	receipt.Total = total

	if err := s.printer.Print(s.formatReceipt(receipt)); err != nil {
		log.Printf("Printer error (bill %s): %v", billNumber, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill No:", r.BillNumber).
		KeyValue("Date:", r.Date+" "+r.Time)

	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
