package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
)

// GET /api/flights
// Supports ?origin=, ?destination= and ?available=true filters.
func (h Handler) ListFlights(c *gin.Context) {
	svc := h.flights(c)

	if c.Query("available") == "true" {
		flights, err := svc.ListAvailable()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"flights": flights})
		return
	}

	flights, err := svc.Search(c.Query("origin"), c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

// GET /api/flights/:id
func (h Handler) GetFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	flight, err := h.flights(c).FindByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

// GET /api/flights/number/:number
func (h Handler) GetFlightByNumber(c *gin.Context) {
	flight, err := h.flights(c).FindByNumber(c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

// GET /api/flights/number/:number/availability
func (h Handler) FlightAvailability(c *gin.Context) {
	flight, err := h.flights(c).FindByNumber(c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondAvailability(c, flight)
}

// GET /api/flights/:id/availability
func (h Handler) FlightAvailabilityByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	flight, err := h.flights(c).FindByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondAvailability(c, flight)
}

func respondAvailability(c *gin.Context, flight models.Flight) {
	c.JSON(http.StatusOK, gin.H{
		"flight_number":   flight.FlightNumber,
		"available_seats": flight.AvailableSeats,
		"available":       flight.HasAvailableSeats(),
	})
}

// POST /api/flights (admin)
func (h Handler) CreateFlight(c *gin.Context) {
	var req services.FlightInput
	if !BindJSONOrError(c, &req) {
		return
	}
	flight, err := h.flights(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flight": flight})
}

// PUT /api/flights/:id (admin)
func (h Handler) UpdateFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.FlightInput
	if !BindJSONOrError(c, &req) {
		return
	}
	flight, err := h.flights(c).Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": flight})
}

// DELETE /api/flights/:id (admin)
func (h Handler) DeleteFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.flights(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "flight deleted"})
}
