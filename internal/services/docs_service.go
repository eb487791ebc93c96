package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/utils"
)

// DocsService renders the e-ticket and invoice PDFs for a booking.
type DocsService struct {
	Bookings  BookingService
	RequestID string
}

func (s DocsService) WithRequestID(requestID string) DocsService {
	s.RequestID = requestID
	b := s.Bookings.WithRequestID(requestID)
	s.Bookings = b
	return s
}

func (s DocsService) GenerateETicket(reference string) ([]byte, string, error) {
	detail, err := s.Bookings.FindByReference(reference)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", reference)
	return buildETicketPDF(detail)
}

func (s DocsService) GenerateInvoice(reference string) ([]byte, string, error) {
	detail, err := s.Bookings.FindByReference(reference)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", reference)
	return buildInvoicePDF(detail)
}

func buildETicketPDF(d BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(d.Passenger.FullName(), "-")),
		fmt.Sprintf("Flight         : %s", safe(d.Flight.FlightNumber, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.Flight.Origin, "-"), safe(d.Flight.Destination, "-")),
		fmt.Sprintf("Departure      : %s", safe(d.Flight.DepartureTime, "-")),
		fmt.Sprintf("Seat           : %s", safe(d.Booking.SeatNumber, "-")),
		fmt.Sprintf("Status         : %s", d.Booking.Status),
		fmt.Sprintf("Booking Ref    : %s", d.Booking.Reference),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket covers one passenger on the flight above. Please present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", d.Booking.Reference, safeFilenamePart(d.Passenger.FullName()))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No  : INV-"+d.Booking.Reference)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date        : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name   : %s", safe(d.Passenger.FullName(), "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Flight %s %s -> %s (%s) Seat %s",
		safe(d.Flight.FlightNumber, "-"),
		safe(d.Flight.Origin, "-"), safe(d.Flight.Destination, "-"),
		safe(d.Flight.DepartureTime, "-"),
		safe(d.Booking.SeatNumber, "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Base fare : $"+utils.FormatMoney(d.Booking.TotalPrice+d.Booking.DiscountAmount))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Discount  : -$"+utils.FormatMoney(d.Booking.DiscountAmount))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: $"+utils.FormatMoney(d.Booking.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one passenger on one flight.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", d.Booking.Reference, safeFilenamePart(d.Passenger.FullName()))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
