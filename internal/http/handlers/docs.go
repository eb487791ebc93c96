package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/middleware"
)

// GET /api/bookings/:reference/eticket
func (h Handler) BookingETicketPDF(c *gin.Context) {
	detail, err := h.bookings(c).FindByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}
	if detail.Booking.Status == models.BookingCancelled {
		RespondError(c, http.StatusUnprocessableEntity, "booking is cancelled", nil)
		return
	}

	pdfBytes, filename, err := h.docs(c).GenerateETicket(detail.Booking.Reference)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bookings/:reference/invoice
func (h Handler) BookingInvoicePDF(c *gin.Context) {
	detail, err := h.bookings(c).FindByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}

	pdfBytes, filename, err := h.docs(c).GenerateInvoice(detail.Booking.Reference)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
