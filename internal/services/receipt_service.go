package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"library/internal/domain"
	"library/internal/domain/models"
	"library/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF listing a user's bookings.
type ReceiptService struct {
	DB        *sql.DB
	Now       func() time.Time
	RequestID string
	Loader    func(ctx context.Context, userID int64) ([]models.Booking, error)
}

func (s ReceiptService) load(ctx context.Context, userID int64) ([]models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID)
	}
	return BookingService{DB: s.DB, RequestID: s.RequestID}.ListBookings(ctx, userID)
}

func (s ReceiptService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ReceiptService) GenerateReceipt(ctx context.Context, userID int64) ([]byte, string, error) {
	if userID <= 0 {
		return nil, "", domain.ValidationError{Field: "user_id", Msg: "must be greater than 0"}
	}
	bookings, err := s.load(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", domain.NotFoundError{Resource: "booking", Msg: "no bookings found"}
	}

	pdf, name, err := buildReceiptPDF(userID, bookings, s.now())
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render receipt", Err: err}
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("user_id=%d bookings=%d", userID, len(bookings)))
	return pdf, name, nil
}

func buildReceiptPDF(userID int64, bookings []models.Booking, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	// core fonts are cp1252; titles arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("User ID      : %d", userID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated at : "+utils.FormatDateTime(generatedAt))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 8, "Book ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(100, 8, "Title", "1", 0, "L", false, 0, "")
	pdf.CellFormat(44, 8, "Booked at", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, b := range bookings {
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(24, 7, fmt.Sprintf("%d", b.BookID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(100, 7, tr(utils.Truncate(utils.Fallback(b.Title, "-"), 55)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(44, 7, utils.FormatDateTime(b.BookingDate), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Total books booked: %d", len(bookings)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", userID, generatedAt.Format("20060102"))
	return buf.Bytes(), filename, nil
}
