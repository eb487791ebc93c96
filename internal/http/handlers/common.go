package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/middleware"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
)

// Handler carries the base service values. Per-request copies are tagged
// with the request id before use.
type Handler struct {
	Auth     services.AuthService
	Flights  services.FlightService
	Bookings services.BookingService
	Docs     services.DocsService
}

func (h Handler) auth(c *gin.Context) services.AuthService {
	return h.Auth.WithRequestID(middleware.GetRequestID(c))
}

func (h Handler) flights(c *gin.Context) services.FlightService {
	return h.Flights.WithRequestID(middleware.GetRequestID(c))
}

func (h Handler) bookings(c *gin.Context) services.BookingService {
	return h.Bookings.WithRequestID(middleware.GetRequestID(c))
}

func (h Handler) docs(c *gin.Context) services.DocsService {
	return h.Docs.WithRequestID(middleware.GetRequestID(c))
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
