package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/payments"
)

func paymentStatus(code string) int {
	switch code {
	case payments.ErrPaymentNotFound, payments.ErrBookingNotFound:
		return http.StatusNotFound
	case payments.ErrInvalidPaymentData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createPayment(c *gin.Context) {
	var req payments.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, payments.ErrInvalidPaymentData, err)
		return
	}
	res, err := s.svc.Payments.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, paymentStatus)
}

func (s *Server) listPayments(c *gin.Context) {
	res, err := s.svc.Payments.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, paymentStatus)
}

func (s *Server) getPayment(c *gin.Context) {
	res, err := s.svc.Payments.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, paymentStatus)
}

func (s *Server) updatePayment(c *gin.Context) {
	var req payments.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, payments.ErrInvalidPaymentData, err)
		return
	}
	res, err := s.svc.Payments.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, paymentStatus)
}

func (s *Server) deletePayment(c *gin.Context) {
	res, err := s.svc.Payments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, paymentStatus)
}

func (s *Server) deletePayments(c *gin.Context) {
	var req payments.DeletePaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, payments.ErrInvalidPaymentData, err)
		return
	}
	res, err := s.svc.Payments.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, paymentStatus)
}
