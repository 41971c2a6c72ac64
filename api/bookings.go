package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/bookings"
)

func bookingStatus(code string) int {
	switch code {
	case bookings.ErrBookingNotFound, bookings.ErrCustomerNotFound, bookings.ErrPackageNotFound:
		return http.StatusNotFound
	case bookings.ErrInvalidBookingData:
		return http.StatusBadRequest
	case bookings.ErrPackageNotAvailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createBooking(c *gin.Context) {
	var req bookings.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, bookings.ErrInvalidBookingData, err)
		return
	}
	res, err := s.svc.Bookings.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, bookingStatus)
}

func (s *Server) listBookings(c *gin.Context) {
	res, err := s.svc.Bookings.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, bookingStatus)
}

func (s *Server) getBooking(c *gin.Context) {
	res, err := s.svc.Bookings.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, bookingStatus)
}

func (s *Server) updateBooking(c *gin.Context) {
	var req bookings.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, bookings.ErrInvalidBookingData, err)
		return
	}
	res, err := s.svc.Bookings.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, bookingStatus)
}

func (s *Server) deleteBooking(c *gin.Context) {
	res, err := s.svc.Bookings.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, bookingStatus)
}

func (s *Server) deleteBookings(c *gin.Context) {
	var req bookings.DeleteBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, bookings.ErrInvalidBookingData, err)
		return
	}
	res, err := s.svc.Bookings.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, bookingStatus)
}
