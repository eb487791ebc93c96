package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/middleware"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
)

// POST /api/bookings
// The booking is always made for the authenticated user.
func (h Handler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	req.UserID = middleware.GetUserID(c)

	detail, err := h.bookings(c).CreateBooking(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// GET /api/bookings/:reference
func (h Handler) GetBooking(c *gin.Context) {
	detail, err := h.bookings(c).FindByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/bookings/:reference
func (h Handler) CancelBooking(c *gin.Context) {
	svc := h.bookings(c)

	detail, err := svc.FindByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}

	booking, err := svc.CancelBooking(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/id/:id
func (h Handler) GetBookingByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.bookings(c).FindByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/bookings/id/:id
func (h Handler) CancelBookingByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := h.bookings(c)

	detail, err := svc.FindByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Booking.UserID != middleware.GetUserID(c) {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}

	booking, err := svc.CancelBookingByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/active
func (h Handler) ListActiveBookings(c *gin.Context) {
	bookings, err := h.bookings(c).ListActiveByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings
// Lists the authenticated user's bookings, optionally ?status= filtered.
func (h Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings(c).ListByUser(middleware.GetUserID(c), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/stats
func (h Handler) BookingStats(c *gin.Context) {
	stats, err := h.bookings(c).Stats(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
