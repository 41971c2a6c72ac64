package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/customers"
)

func customerStatus(code string) int {
	switch code {
	case customers.ErrCustomerNotFound, customers.ErrUserNotFound:
		return http.StatusNotFound
	case customers.ErrCustomerAlreadyExists:
		return http.StatusConflict
	case customers.ErrInvalidCustomerData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createCustomer(c *gin.Context) {
	var req customers.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, customers.ErrInvalidCustomerData, err)
		return
	}
	res, err := s.svc.Customers.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, customerStatus)
}

func (s *Server) listCustomers(c *gin.Context) {
	res, err := s.svc.Customers.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, customerStatus)
}

func (s *Server) getCustomer(c *gin.Context) {
	res, err := s.svc.Customers.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, customerStatus)
}

func (s *Server) updateCustomer(c *gin.Context) {
	var req customers.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, customers.ErrInvalidCustomerData, err)
		return
	}
	res, err := s.svc.Customers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, customerStatus)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	res, err := s.svc.Customers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, customerStatus)
}

func (s *Server) deleteCustomers(c *gin.Context) {
	var req customers.DeleteCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, customers.ErrInvalidCustomerData, err)
		return
	}
	res, err := s.svc.Customers.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, customerStatus)
}
